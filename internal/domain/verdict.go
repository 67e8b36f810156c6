package domain

// ValidationVerdict is the outcome of inspecting a submitted text.
// A scorer multiplies its raw score by PenaltyMultiplier.
type ValidationVerdict struct {
	IsValid           bool     `json:"is_valid"`
	PenaltyMultiplier float64  `json:"penalty_multiplier"`
	Issues            []string `json:"issues"`
	HasNonEnglish     bool     `json:"has_non_english"`
	NonEnglishRatio   float64  `json:"non_english_ratio"`
	HasRandom         bool     `json:"has_random"`
	RandomRatio       float64  `json:"random_ratio"`

	NonEnglishChars []string `json:"non_english_chars,omitempty"`
	RandomExamples  []string `json:"random_examples,omitempty"`
	WordCount       int      `json:"word_count"`
}

// AcceptThreshold is the lowest penalty multiplier a valid text may carry.
const AcceptThreshold = 0.5

// Submission statuses reported by the scoring orchestrator.
const (
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// ScoreResult is what the orchestrator reports for one submission.
type ScoreResult struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	RawScore   float64           `json:"raw_score"`
	FinalScore float64           `json:"final_score"`
	Penalty    float64           `json:"penalty_multiplier"`
	Feedback   []string          `json:"feedback"`
	Verdict    ValidationVerdict `json:"verdict"`
}

func (r ScoreResult) Rejected() bool { return r.Status == StatusRejected }

// FileVerdict pairs a verdict with the file it was computed for.
type FileVerdict struct {
	Path    string            `json:"path"`
	Verdict ValidationVerdict `json:"verdict"`
}

// SubmissionEntry is one line of the submission history.
type SubmissionEntry struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"timestamp"`
	Status     string  `json:"status"`
	Penalty    float64 `json:"penalty_multiplier"`
	FinalScore float64 `json:"final_score"`
	WordCount  int     `json:"word_count"`
	IssueCount int     `json:"issue_count"`
}
