// Package textutils holds small text cleanup helpers shared by the parsers.
package textutils

import (
	"strings"
	"unicode/utf8"
)

// CollapseWhitespace replaces every run of whitespace with one space and trims
// both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Snippet returns at most n runes of s, with "..." appended when truncated.
func Snippet(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
