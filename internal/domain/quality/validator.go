// Package quality decides whether a submitted text is fit to be scored and
// how much a raw score should be scaled down for its defects.
package quality

import (
	"strings"

	"github.com/textgate/textgate/internal/domain"
)

// Validator inspects texts under a fixed policy. It holds no mutable state
// and is safe for concurrent use.
type Validator struct {
	rules []rule
}

// New creates a Validator for the given policy.
func New(policy domain.Policy) *Validator {
	return &Validator{rules: rulesFor(policy.EffectiveMinWords())}
}

// Validate inspects text under the default policy.
func Validate(text string) domain.ValidationVerdict {
	return New(domain.DefaultPolicy()).Validate(text)
}

// Validate inspects text and returns its verdict. It never fails: empty or
// binary input simply produces a verdict.
func (v *Validator) Validate(text string) domain.ValidationVerdict {
	f := findings{
		nonEnglish: detectNonEnglish(text),
		random:     detectRandom(text),
		wordCount:  len(strings.Fields(text)),
	}

	penalty, issues := compose(f, v.rules)

	return domain.ValidationVerdict{
		IsValid:           penalty >= domain.AcceptThreshold,
		PenaltyMultiplier: penalty,
		Issues:            issues,
		HasNonEnglish:     f.nonEnglish.flagged,
		NonEnglishRatio:   f.nonEnglish.ratio,
		HasRandom:         f.random.flagged,
		RandomRatio:       f.random.ratio,
		NonEnglishChars:   f.nonEnglish.chars,
		RandomExamples:    f.random.examples(),
		WordCount:         f.wordCount,
	}
}
