package application

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/textgate/textgate/internal/domain"
	"github.com/textgate/textgate/internal/domain/quality"
)

const defaultConcurrency = 8

// ValidateService validates files in bulk.
type ValidateService struct {
	validator   *quality.Validator
	concurrency int
}

// NewValidateService creates a ValidateService. A concurrency below 1 uses
// the default limit.
func NewValidateService(validator *quality.Validator, concurrency int) *ValidateService {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &ValidateService{validator: validator, concurrency: concurrency}
}

// ValidateFiles reads and validates every path concurrently. Results keep the
// order of paths. The first read error cancels the remaining work.
func (s *ValidateService) ValidateFiles(ctx context.Context, paths []string) ([]domain.FileVerdict, error) {
	results := make([]domain.FileVerdict, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			results[i] = domain.FileVerdict{Path: path, Verdict: s.validator.Validate(string(data))}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
