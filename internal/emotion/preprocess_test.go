package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessBlank(t *testing.T) {
	assert.Equal(t, "", Preprocess(""))
	assert.Equal(t, "", Preprocess("   \n\t "))
}

func TestPreprocessRemovesFillerWords(t *testing.T) {
	assert.Equal(t, "i feel happy", Preprocess("um i feel happy you know"))
	assert.Equal(t, "i was confused", Preprocess("well I was uh confused"))
}

func TestPreprocessRemovesFillerPhrases(t *testing.T) {
	assert.Equal(t, "i was tired", Preprocess("I was sort of tired"))
	assert.Equal(t, "it was scary", Preprocess("it was kind of scary"))
}

func TestPreprocessLowercases(t *testing.T) {
	assert.Equal(t, "today was a good day", Preprocess("Today WAS a Good Day"))
}

func TestPreprocessCollapsesRepeatedCharacters(t *testing.T) {
	assert.Equal(t, "i am soo tired", Preprocess("I am soooo tired"))
}

func TestPreprocessNormalizesWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", Preprocess("one   two \n three"))
}

func TestPreprocessPunctuationSpacing(t *testing.T) {
	assert.Equal(t, "hello, world", Preprocess("hello , world"))
}

func TestCollapseRepeats(t *testing.T) {
	assert.Equal(t, "soo", collapseRepeats("sooo"))
	assert.Equal(t, "happy", collapseRepeats("happy"))
	assert.Equal(t, "aa", collapseRepeats("aaaaa"))
	assert.Equal(t, "", collapseRepeats(""))
}
