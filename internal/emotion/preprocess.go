package emotion

import (
	"regexp"
	"strings"
)

// Filler words removed before classification.
var fillerWords = map[string]bool{
	"um": true, "uh": true, "er": true, "ah": true, "eh": true,
	"hmm": true, "hm": true, "like": true, "well": true, "so": true,
	"actually": true, "basically": true, "literally": true,
	"right": true, "okay": true, "ok": true,
}

// Multi-word fillers removed as phrases before tokenization.
var fillerPhrases = []string{
	"you know", "sort of", "kind of", "i mean", "you see",
}

var (
	nonWordRe     = regexp.MustCompile(`[^\w]`)
	punctSpaceRe  = regexp.MustCompile(`\s+([,.!?;:])`)
	punctRepeatRe = regexp.MustCompile(`([,.!?;:])\s*([,.!?;:])`)
)

// Preprocess normalizes journal text before classification: lowercases,
// strips filler words and phrases, collapses runs of more than two
// repeated characters, and normalizes whitespace and punctuation spacing.
// Returns "" for blank input.
func Preprocess(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = strings.ToLower(text)

	for _, phrase := range fillerPhrases {
		text = strings.ReplaceAll(text, phrase, " ")
	}

	words := strings.Fields(text)
	filtered := words[:0]
	for _, word := range words {
		clean := nonWordRe.ReplaceAllString(word, "")
		if !fillerWords[clean] {
			filtered = append(filtered, word)
		}
	}
	text = strings.Join(filtered, " ")

	text = collapseRepeats(text)

	text = strings.Join(strings.Fields(text), " ")
	text = punctSpaceRe.ReplaceAllString(text, "$1")
	text = punctRepeatRe.ReplaceAllString(text, "$1$2")

	return strings.TrimSpace(text)
}

// collapseRepeats shortens runs of more than two identical characters to
// two, e.g. "sooo" -> "soo".
func collapseRepeats(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
