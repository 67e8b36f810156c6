package quality

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minRunLength       = 5
	maxInspectedTokens = 50
	minCleanWordLength = 3
	minWordLetterShare = 0.5
	randomFlagRatio    = 0.1
	maxPatternExamples = 5
	maxWordExamples    = 5
)

type randomFindings struct {
	// matches holds repeated-rune runs followed by non-letter runs.
	matches      []string
	invalidWords []string
	ratio        float64
	flagged      bool
}

// examples returns up to five pattern matches followed by up to five
// invalid words.
func (f randomFindings) examples() []string {
	var out []string
	out = append(out, f.matches[:min(len(f.matches), maxPatternExamples)]...)
	out = append(out, f.invalidWords[:min(len(f.invalidWords), maxWordExamples)]...)
	return out
}

func detectRandom(text string) randomFindings {
	matches := repeatedRuns(text)
	matches = append(matches, nonLetterRuns(text)...)

	tokens := strings.Fields(text)
	inspected := tokens[:min(len(tokens), maxInspectedTokens)]

	var invalid []string
	for _, tok := range inspected {
		if isInvalidWord(tok) {
			invalid = append(invalid, tok)
		}
	}

	var ratio float64
	if len(inspected) > 0 {
		ratio = float64(len(invalid)) / float64(len(inspected))
	}

	return randomFindings{
		matches:      matches,
		invalidWords: invalid,
		ratio:        ratio,
		flagged:      len(matches) > 0 || ratio > randomFlagRatio,
	}
}

// repeatedRuns returns every run of at least minRunLength identical runes.
// Newlines never form a run.
func repeatedRuns(text string) []string {
	var runs []string
	start, length := 0, 0
	var prev rune = -1

	flush := func(end int) {
		if length >= minRunLength {
			runs = append(runs, text[start:end])
		}
	}

	for i, r := range text {
		if r == prev && r != '\n' {
			length++
			continue
		}
		flush(i)
		start, length, prev = i, 1, r
	}
	flush(len(text))
	return runs
}

// nonLetterRuns returns every run of at least minRunLength runes that are
// neither ASCII letters nor whitespace.
func nonLetterRuns(text string) []string {
	var runs []string
	start, length := -1, 0

	flush := func(end int) {
		if start >= 0 && length >= minRunLength {
			runs = append(runs, text[start:end])
		}
		start, length = -1, 0
	}

	for i, r := range text {
		if isASCIILetter(r) || unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		length++
	}
	flush(len(text))
	return runs
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// isInvalidWord reports whether a token, stripped to its word runes, is long
// enough to judge and is mostly made of non-letters.
func isInvalidWord(token string) bool {
	clean := strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return -1
	}, token)

	n := utf8.RuneCountInString(clean)
	if n < minCleanWordLength {
		return false
	}

	var letters int
	for _, r := range clean {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return float64(letters)/float64(n) < minWordLetterShare
}
