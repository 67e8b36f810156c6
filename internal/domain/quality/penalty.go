package quality

import (
	"fmt"
	"strings"
)

const (
	criticalNonEnglishRatio = 0.2
	warnNonEnglishRatio     = 0.1
	warnRandomRatio         = 0.15

	criticalNonEnglishPenalty = 0.0
	warnNonEnglishPenalty     = 0.3
	minorNonEnglishPenalty    = 0.7
	warnRandomPenalty         = 0.2
	minorRandomPenalty        = 0.8
	shortTextPenalty          = 0.5
)

// combineMode decides how a fired rule folds its penalty into the running value.
type combineMode int

const (
	// assign replaces the running penalty. Only valid for the first rule.
	assign combineMode = iota
	// tighten keeps the lower of the running penalty and the rule's penalty.
	tighten
)

// findings is everything the rules need to know about a text.
type findings struct {
	nonEnglish nonEnglishFindings
	random     randomFindings
	wordCount  int
}

// rule is one step of the penalty reducer. apply reports whether the rule
// fired, and if so the penalty it proposes and the issue it raises.
type rule struct {
	name    string
	combine combineMode
	apply   func(f findings) (penalty float64, issue string, fired bool)
}

// rulesFor returns the fixed rule sequence: non-English, random, length.
// Issue order in a verdict follows this order.
func rulesFor(minWords int) []rule {
	return []rule{
		{name: "non_english", combine: assign, apply: nonEnglishRule},
		{name: "random", combine: tighten, apply: randomRule},
		{name: "length", combine: tighten, apply: lengthRule(minWords)},
	}
}

// compose folds the rules over the findings starting from no penalty.
func compose(f findings, rules []rule) (float64, []string) {
	penalty := 1.0
	issues := []string{}
	for _, r := range rules {
		p, issue, fired := r.apply(f)
		if !fired {
			continue
		}
		switch r.combine {
		case assign:
			penalty = p
		case tighten:
			penalty = min(penalty, p)
		}
		issues = append(issues, issue)
	}
	return penalty, issues
}

func nonEnglishRule(f findings) (float64, string, bool) {
	ne := f.nonEnglish
	if !ne.flagged {
		return 0, "", false
	}
	switch {
	case ne.ratio > criticalNonEnglishRatio:
		return criticalNonEnglishPenalty, fmt.Sprintf(
			"CRITICAL: Text contains %s non-English characters. Please write in English. Found: %s",
			percent(ne.ratio), listChars(ne.chars, 5)), true
	case ne.ratio > warnNonEnglishRatio:
		return warnNonEnglishPenalty, fmt.Sprintf(
			"WARNING: Text contains %s non-English characters. Found: %s",
			percent(ne.ratio), listChars(ne.chars, 5)), true
	default:
		return minorNonEnglishPenalty, fmt.Sprintf(
			"Minor: Some non-English characters detected: %s",
			listChars(ne.chars, 3)), true
	}
}

func randomRule(f findings) (float64, string, bool) {
	rf := f.random
	if !rf.flagged {
		return 0, "", false
	}
	if rf.ratio > warnRandomRatio {
		return warnRandomPenalty, fmt.Sprintf(
			"WARNING: Text contains random or meaningless characters (%s invalid words)",
			percent(rf.ratio)), true
	}
	return minorRandomPenalty, "Minor: Some unusual character patterns detected", true
}

func lengthRule(minWords int) func(findings) (float64, string, bool) {
	return func(f findings) (float64, string, bool) {
		if f.wordCount >= minWords {
			return 0, "", false
		}
		return shortTextPenalty, fmt.Sprintf(
			"WARNING: Text too short (%d words, minimum %d)", f.wordCount, minWords), true
	}
}

// percent formats a ratio with one decimal place, e.g. 0.253 -> "25.3%".
func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func listChars(chars []string, limit int) string {
	return strings.Join(chars[:min(len(chars), limit)], ", ")
}
