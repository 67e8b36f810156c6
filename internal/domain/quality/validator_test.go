package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textgate/textgate/internal/domain"
)

const normalText = "Hello world this is a perfectly normal sentence with more than twenty words in it for testing purposes today and again"

// mixedText builds a text of plain and accented tokens. Each token is four
// runes plus a trailing space, so the non-English ratio is accented/(5*total).
func mixedText(plain, accented int) string {
	return strings.Repeat("cafe ", plain) + strings.Repeat("café ", accented)
}

func TestValidate_NormalText(t *testing.T) {
	v := Validate(normalText)
	assert.True(t, v.IsValid)
	assert.Equal(t, 1.0, v.PenaltyMultiplier)
	assert.Empty(t, v.Issues)
	assert.NotNil(t, v.Issues)
	assert.False(t, v.HasNonEnglish)
	assert.False(t, v.HasRandom)
	assert.Equal(t, 21, v.WordCount)
}

func TestValidate_EmptyText(t *testing.T) {
	v := Validate("")
	assert.Equal(t, 0.0, v.NonEnglishRatio)
	assert.False(t, v.HasNonEnglish)
	assert.False(t, v.HasRandom)
	assert.Equal(t, 0.5, v.PenaltyMultiplier)
	assert.True(t, v.IsValid)
	assert.Equal(t, []string{"WARNING: Text too short (0 words, minimum 20)"}, v.Issues)
}

func TestValidate_ChineseTextIsCritical(t *testing.T) {
	v := Validate(strings.Repeat("你好世界", 10))
	assert.False(t, v.IsValid)
	assert.Equal(t, 0.0, v.PenaltyMultiplier)
	assert.True(t, v.HasNonEnglish)
	assert.Equal(t, 1.0, v.NonEnglishRatio)
	assert.Equal(t, []string{"你", "好", "世", "界"}, v.NonEnglishChars)
	require.NotEmpty(t, v.Issues)
	assert.True(t, strings.HasPrefix(v.Issues[0], "CRITICAL"), v.Issues[0])
	assert.Contains(t, v.Issues[0], "100.0%")
}

func TestValidate_CriticalStaysZeroWhenLaterRulesFire(t *testing.T) {
	// One token of Han script: a non-letter run, and far below the word minimum.
	v := Validate(strings.Repeat("你好世界", 10))
	require.Len(t, v.Issues, 3)
	assert.True(t, strings.HasPrefix(v.Issues[0], "CRITICAL"))
	assert.True(t, strings.HasPrefix(v.Issues[1], "Minor"))
	assert.True(t, strings.HasPrefix(v.Issues[2], "WARNING: Text too short"))
	assert.True(t, v.HasRandom)
	assert.Equal(t, 0.0, v.PenaltyMultiplier)
}

func TestValidate_RepeatedRunsAndShortText(t *testing.T) {
	v := Validate("aaaaaaaaaa bbbbbbbbbb")
	assert.True(t, v.HasRandom)
	assert.Equal(t, 0.0, v.RandomRatio)
	assert.LessOrEqual(t, v.PenaltyMultiplier, 0.8)
	assert.Equal(t, 0.5, v.PenaltyMultiplier)
	assert.Equal(t, []string{"aaaaaaaaaa", "bbbbbbbbbb"}, v.RandomExamples)
	assert.Equal(t, []string{
		"Minor: Some unusual character patterns detected",
		"WARNING: Text too short (2 words, minimum 20)",
	}, v.Issues)
}

func TestValidate_ThreeWords(t *testing.T) {
	v := Validate("abc def ghi")
	assert.Equal(t, 0.5, v.PenaltyMultiplier)
	assert.Equal(t, []string{"WARNING: Text too short (3 words, minimum 20)"}, v.Issues)
}

func TestValidate_NonEnglishAtThresholdNotFlagged(t *testing.T) {
	v := Validate(mixedText(30, 10))
	assert.InDelta(t, 0.05, v.NonEnglishRatio, 1e-9)
	assert.False(t, v.HasNonEnglish)
	assert.Equal(t, 1.0, v.PenaltyMultiplier)
}

func TestValidate_MinorNonEnglish(t *testing.T) {
	v := Validate(mixedText(30, 15))
	assert.True(t, v.HasNonEnglish)
	assert.Equal(t, 0.7, v.PenaltyMultiplier)
	assert.True(t, v.IsValid)
	require.Len(t, v.Issues, 1)
	assert.Equal(t, "Minor: Some non-English characters detected: é", v.Issues[0])
}

func TestValidate_WarningNonEnglish(t *testing.T) {
	v := Validate(mixedText(10, 30))
	assert.InDelta(t, 0.15, v.NonEnglishRatio, 1e-9)
	assert.Equal(t, 0.3, v.PenaltyMultiplier)
	assert.False(t, v.IsValid)
	require.Len(t, v.Issues, 1)
	assert.True(t, strings.HasPrefix(v.Issues[0], "WARNING"))
	assert.Contains(t, v.Issues[0], "15.0%")
}

func TestValidate_MoreNonEnglishLowersPenalty(t *testing.T) {
	lighter := Validate(mixedText(30, 15))
	heavier := Validate(mixedText(10, 30))
	assert.Greater(t, lighter.PenaltyMultiplier, heavier.PenaltyMultiplier)
}

func TestValidate_ManyInvalidWords(t *testing.T) {
	text := strings.Repeat("hello ", 20) + strings.Repeat("ab123 ", 5)
	v := Validate(text)
	assert.True(t, v.HasRandom)
	assert.InDelta(t, 0.2, v.RandomRatio, 1e-9)
	assert.Equal(t, 0.2, v.PenaltyMultiplier)
	assert.False(t, v.IsValid)
	require.Len(t, v.Issues, 1)
	assert.Equal(t, "WARNING: Text contains random or meaningless characters (20.0% invalid words)", v.Issues[0])
	assert.Len(t, v.RandomExamples, 5)
}

func TestValidate_FewInvalidWordsIsMinor(t *testing.T) {
	text := strings.Repeat("hello ", 20) + strings.Repeat("ab123 ", 3)
	v := Validate(text)
	assert.True(t, v.HasRandom)
	assert.Equal(t, 0.8, v.PenaltyMultiplier)
	assert.True(t, v.IsValid)
}

func TestValidate_SingleInvalidWordNotFlagged(t *testing.T) {
	text := strings.Repeat("hello ", 20) + "ab123"
	v := Validate(text)
	assert.False(t, v.HasRandom)
	assert.Equal(t, 1.0, v.PenaltyMultiplier)
}

func TestValidate_OnlyFirstFiftyTokensInspected(t *testing.T) {
	text := strings.Repeat("hello ", 50) + strings.Repeat("ab123 ", 50)
	v := Validate(text)
	assert.Equal(t, 0.0, v.RandomRatio)
	assert.False(t, v.HasRandom)
}

func TestValidate_Idempotent(t *testing.T) {
	text := "Ça va? aaaaaa 12345 " + normalText
	assert.Equal(t, Validate(text), Validate(text))
}

func TestValidate_InvalidUTF8DoesNotPanic(t *testing.T) {
	v := Validate("\xff\xfe")
	assert.Equal(t, 1.0, v.NonEnglishRatio)
	assert.False(t, v.IsValid)
}

func TestValidate_PenaltyNeverRaisedByLaterRules(t *testing.T) {
	for _, text := range []string{
		"",
		normalText,
		mixedText(10, 30),
		"aaaaaaaaaa bbbbbbbbbb",
		strings.Repeat("ab123 ", 30),
		strings.Repeat("你好世界", 10),
	} {
		v := Validate(text)
		assert.GreaterOrEqual(t, v.PenaltyMultiplier, 0.0)
		assert.LessOrEqual(t, v.PenaltyMultiplier, 1.0)
		assert.Equal(t, v.PenaltyMultiplier >= 0.5, v.IsValid, "text %q", text)
	}
}

func TestNew_CustomMinWords(t *testing.T) {
	v := New(domain.Policy{MinWords: 3}).Validate("abc def ghi")
	assert.Equal(t, 1.0, v.PenaltyMultiplier)
	assert.Empty(t, v.Issues)

	short := New(domain.Policy{MinWords: 5}).Validate("abc def ghi")
	assert.Equal(t, []string{"WARNING: Text too short (3 words, minimum 5)"}, short.Issues)
}

func TestNew_ZeroPolicyUsesDefaults(t *testing.T) {
	assert.Equal(t, Validate("abc def ghi"), New(domain.Policy{}).Validate("abc def ghi"))
}
