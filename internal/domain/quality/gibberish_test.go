package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatedRuns(t *testing.T) {
	assert.Equal(t, []string{"aaaaa"}, repeatedRuns("aaaaa bbbb"))
	assert.Nil(t, repeatedRuns("abcde"))
	assert.Equal(t, []string{"!!!!!!"}, repeatedRuns("wow!!!!!!"))
}

func TestRepeatedRuns_NewlinesNeverRun(t *testing.T) {
	assert.Nil(t, repeatedRuns("a\n\n\n\n\n\nb"))
}

func TestRepeatedRuns_SpacesRun(t *testing.T) {
	assert.Equal(t, []string{"     "}, repeatedRuns("hi     there"))
}

func TestRepeatedRuns_MultiByte(t *testing.T) {
	assert.Equal(t, []string{"ééééé"}, repeatedRuns("xééééé"))
}

func TestNonLetterRuns(t *testing.T) {
	assert.Equal(t, []string{"!?#$%"}, nonLetterRuns("ok !?#$% ok"))
	assert.Equal(t, []string{"12345"}, nonLetterRuns("12345"))
	assert.Nil(t, nonLetterRuns("12 345"))
	assert.Nil(t, nonLetterRuns("a1b2c3d4e5"))
}

func TestIsInvalidWord(t *testing.T) {
	assert.True(t, isInvalidWord("ab123"))
	assert.True(t, isInvalidWord("x3#9q1"))
	assert.False(t, isInvalidWord("a1b2c3"), "exactly half letters is valid")
	assert.False(t, isInvalidWord("12"), "too short to judge")
	assert.False(t, isInvalidWord("#!1?"), "strips to a single rune")
	assert.False(t, isInvalidWord("hello,"))
	assert.False(t, isInvalidWord("café"))
}

func TestDetectRandom_MatchesBeforeWords(t *testing.T) {
	f := detectRandom("zzzzzz ab123 @@@@@")
	assert.Equal(t, []string{"zzzzzz", "@@@@@", "@@@@@"}, f.matches)
	assert.Equal(t, []string{"ab123"}, f.invalidWords)
	assert.Equal(t, []string{"zzzzzz", "@@@@@", "@@@@@", "ab123"}, f.examples())
	assert.True(t, f.flagged)
}

func TestDetectRandom_ExamplesCapped(t *testing.T) {
	f := detectRandom("aaaaa bbbbb ccccc ddddd eeeee fffff gggggg 1a111 2b222 3c333 4d444 5e555 6f666")
	assert.Len(t, f.examples(), 10)
}

func TestDetectRandom_NoTokens(t *testing.T) {
	f := detectRandom("   ")
	assert.Equal(t, 0.0, f.ratio)
	assert.False(t, f.flagged)
}
