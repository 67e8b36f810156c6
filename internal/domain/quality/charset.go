package quality

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// nonEnglishFlagRatio is the share of non-permitted runes above which a
	// text is flagged as containing non-English content.
	nonEnglishFlagRatio = 0.05
	maxNonEnglishChars  = 10
)

// englishPunctuation is the exact set of symbols accepted besides ASCII
// letters, ASCII digits and whitespace.
const englishPunctuation = `.,!?;:-()[]"'/@#$%&*+=<>`

type nonEnglishFindings struct {
	ratio   float64
	chars   []string
	flagged bool
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isEnglishPermitted reports whether r may appear in English text.
func isEnglishPermitted(r rune) bool {
	if isASCIILetter(r) || isASCIIDigit(r) || unicode.IsSpace(r) {
		return true
	}
	return strings.ContainsRune(englishPunctuation, r)
}

// detectNonEnglish measures the share of runes outside the English allow-list.
// Invalid UTF-8 bytes decode to utf8.RuneError and count as non-permitted.
func detectNonEnglish(text string) nonEnglishFindings {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return nonEnglishFindings{}
	}

	var count int
	seen := make(map[rune]bool)
	var chars []string
	for _, r := range text {
		if isEnglishPermitted(r) {
			continue
		}
		count++
		if !seen[r] && len(chars) < maxNonEnglishChars {
			seen[r] = true
			chars = append(chars, string(r))
		}
	}

	ratio := float64(count) / float64(total)
	return nonEnglishFindings{
		ratio:   ratio,
		chars:   chars,
		flagged: ratio > nonEnglishFlagRatio,
	}
}
