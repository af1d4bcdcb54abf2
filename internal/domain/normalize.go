package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares a name for storage and comparison: it trims
// surrounding whitespace, lowercases, and collapses runs of spaces.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsPathSafe reports whether name can be used as a single URL path segment:
// no whitespace, slashes or control characters.
func IsPathSafe(name string) bool {
	for _, r := range name {
		if r == '/' || r == '\\' || r == '?' || r == '#' || unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return name != ""
}
