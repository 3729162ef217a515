package util

import (
	"regexp"
	"strings"
)

// MaxQueryRunes is the longest query CleanText will return
const MaxQueryRunes = 250

var (
	quotePunct = regexp.MustCompile(`[“”"'.,!?]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanText strips quotes and sentence punctuation, collapses whitespace
// and truncates to MaxQueryRunes so the result can be used as a search query.
func CleanText(s string) string {
	s = quotePunct.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))

	runes := []rune(s)
	if len(runes) > MaxQueryRunes {
		s = string(runes[:MaxQueryRunes])
	}
	return s
}

// CleanValue is CleanText for untyped cells; anything that is not a string
// yields "".
func CleanValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return CleanText(s)
}
