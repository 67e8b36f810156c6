package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/textgate/textgate/internal/domain"
	"github.com/textgate/textgate/internal/domain/quality"
	"github.com/textgate/textgate/internal/logger"
)

// ScoreService gates submissions through the validator and scales the
// external model's score by the verdict's penalty.
type ScoreService struct {
	validator *quality.Validator
	scorer    domain.Scorer
	history   domain.SubmissionHistory
	log       logger.Logger
	now       func() time.Time
}

// NewScoreService creates a ScoreService. scorer and history may be nil:
// without a scorer accepted texts fail with domain.ErrNoScorer, without a
// history nothing is recorded.
func NewScoreService(
	validator *quality.Validator,
	scorer domain.Scorer,
	history domain.SubmissionHistory,
	log logger.Logger,
) *ScoreService {
	if log == nil {
		log = logger.Nop()
	}
	return &ScoreService{
		validator: validator, scorer: scorer, history: history,
		log: log, now: time.Now,
	}
}

// Validate returns the verdict for text without scoring it.
func (s *ScoreService) Validate(text string) domain.ValidationVerdict {
	return s.validator.Validate(text)
}

// Score validates text and, if it is acceptable, scores it.
// Rejected texts never reach the scorer and get a final score of 0.
func (s *ScoreService) Score(ctx context.Context, text string) (*domain.ScoreResult, error) {
	verdict := s.validator.Validate(text)

	result := &domain.ScoreResult{
		ID:       uuid.NewString(),
		Penalty:  verdict.PenaltyMultiplier,
		Feedback: verdict.Issues,
		Verdict:  verdict,
	}

	if !verdict.IsValid {
		result.Status = domain.StatusRejected
		s.log.Info("submission rejected", "id", result.ID, "penalty", verdict.PenaltyMultiplier, "issues", len(verdict.Issues))
		s.record(result)
		return result, nil
	}

	if s.scorer == nil {
		return nil, domain.ErrNoScorer
	}

	raw, err := s.scorer.Score(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}
	raw = max(raw, 0)

	result.Status = domain.StatusAccepted
	result.RawScore = raw
	result.FinalScore = raw * verdict.PenaltyMultiplier
	s.log.Debug("submission scored", "id", result.ID, "raw", raw, "penalty", verdict.PenaltyMultiplier)
	s.record(result)
	return result, nil
}

// History returns recorded submissions, oldest first.
func (s *ScoreService) History() ([]domain.SubmissionEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load()
}

func (s *ScoreService) record(r *domain.ScoreResult) {
	if s.history == nil {
		return
	}
	entry := domain.SubmissionEntry{
		ID:         r.ID,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
		Status:     r.Status,
		Penalty:    r.Penalty,
		FinalScore: r.FinalScore,
		WordCount:  r.Verdict.WordCount,
		IssueCount: len(r.Verdict.Issues),
	}
	if err := s.history.Save(entry); err != nil {
		s.log.Warn("saving submission history failed", "id", r.ID, "error", err)
	}
}
