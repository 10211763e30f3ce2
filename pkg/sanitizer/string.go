package sanitizer

import (
	"html"
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates a string to the specified maximum length in runes.
// If the string is longer than maxLen, it will be truncated.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	stripped := htmlTagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(stripped)
}

// SingleLine converts a multi-line string to a single line by replacing
// line breaks with spaces and normalizing whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}
