// Package scorer talks to the external essay-scoring model over HTTP.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/textgate/textgate/internal/domain"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 512
)

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Score *float64 `json:"score"`
}

// StatusError is returned when the model answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("scorer returned status %d: %s", e.StatusCode, e.Body)
}

// HTTPScorer implements domain.Scorer against a JSON endpoint:
// POST {"text": ...} -> {"score": <float>}.
type HTTPScorer struct {
	endpoint string
	client   *retryablehttp.Client
}

// New creates an HTTPScorer from cfg. A zero RetryMax disables retries.
func New(cfg domain.ScorerConfig) *HTTPScorer {
	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = defaultRetryWaitMin
	client.RetryWaitMax = defaultRetryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil

	return &HTTPScorer{endpoint: cfg.Endpoint, client: client}
}

// Score sends text to the model and returns its raw score.
func (s *HTTPScorer) Score(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return 0, fmt.Errorf("encoding request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("calling scorer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return 0, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decoding scorer response: %w", err)
	}
	if out.Score == nil {
		return 0, errors.New("scorer response has no score")
	}
	return *out.Score, nil
}
