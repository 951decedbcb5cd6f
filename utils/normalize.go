package utils

import (
	"regexp"
	"strings"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	punctRe = regexp.MustCompile(`[|\\~` + "`" + `*_=<>{}\[\]]+`)
)

// NormalizeText lowercases, strips punctuation noise and collapses whitespace.
// Every downstream matcher compares normalized text.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeCompact normalizes for space-insensitive comparison (lowercase,
// no spaces or dots).
func NormalizeCompact(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

// CollapseSpaces collapses runs of whitespace to a single space.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
