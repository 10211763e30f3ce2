package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode applies NFC normalization so that visually identical
// names and identifiers compare equal regardless of how they were typed.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// Name cleans a person, team, or section name: Unicode-normalized, control
// characters removed, internal whitespace collapsed, surrounding whitespace
// trimmed.
func Name(s string) string {
	return Apply(s, NormalizeUnicode, RemoveControlChars, RemoveExtraWhitespace)
}

// Email canonicalizes an email address for storage and comparison.
func Email(s string) string {
	return TrimToLower(NormalizeUnicode(s))
}

// GoogleID canonicalizes a Google account id. The @gmail.com suffix is
// dropped because accounts are stored in short form; repeated suffixes are
// all removed to keep the function idempotent.
func GoogleID(s string) string {
	s = TrimToLower(NormalizeUnicode(s))
	for strings.HasSuffix(s, "@gmail.com") {
		s = strings.TrimSuffix(s, "@gmail.com")
	}
	return s
}

// CourseID cleans a course identifier.
func CourseID(s string) string {
	return Apply(s, NormalizeUnicode, RemoveControlChars, RemoveExtraWhitespace)
}

// TextField cleans a free-text field destined for plain rendering contexts:
// normalized, control characters removed, trimmed, and HTML-escaped.
func TextField(s string) string {
	return Apply(s, NormalizeUnicode, RemoveControlChars, Trim, EscapeHTML)
}

// RichText cleans a comment body that may legitimately carry markup.
// Markup is preserved but script tags, event handlers, and javascript:
// references are stripped.
func RichText(s string) string {
	return Apply(s, NormalizeUnicode, RemoveControlChars, StripScriptTags, RemoveJavaScriptEvents, Trim)
}
