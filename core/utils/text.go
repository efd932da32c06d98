package utils

import (
	"regexp"
	"strings"
)

var (
	htmlTags = regexp.MustCompile(`(?i)<[\s\S]*?>`)
	// Letters, marks, digits, apostrophes, hyphens, spaces and the middle dot
	// used in some localized names.
	unsafeCharacters = regexp.MustCompile(`[^\p{L}\p{M}\p{N}'\- ·]`)
)

// HasHTMLTags reports whether s contains something that looks like a tag.
func HasHTMLTags(s string) bool {
	return s != "" && htmlTags.MatchString(s)
}

// RemoveUnsafeCharacters drops every character not allowed in a game name.
func RemoveUnsafeCharacters(s string) string {
	return unsafeCharacters.ReplaceAllString(s, "")
}

// SanitizeName strips tags and unsafe characters from an uploaded character
// or retainer name and trims surrounding spaces.
func SanitizeName(s string) string {
	if s == "" {
		return ""
	}
	s = htmlTags.ReplaceAllString(s, "")
	return strings.TrimSpace(RemoveUnsafeCharacters(s))
}
