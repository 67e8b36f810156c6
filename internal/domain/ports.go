package domain

import (
	"context"
	"errors"
)

// ErrNoScorer is returned when an accepted text needs scoring but no
// scoring model is configured.
var ErrNoScorer = errors.New("no scorer configured")

// ErrEmptyInput is returned by input surfaces that received no text at all.
var ErrEmptyInput = errors.New("no text provided")

// Scorer produces a raw quality score for a text. Implementations wrap the
// external essay-scoring model.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// ConfigLoader loads textgate configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// SubmissionHistory persists scored submissions.
type SubmissionHistory interface {
	Save(entry SubmissionEntry) error
	Load() ([]SubmissionEntry, error)
}
