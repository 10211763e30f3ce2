package sanitizer

import "html"

// EscapeHTML escapes HTML special characters to neutralize markup injection.
// Input is unescaped first so that applying the function to already-escaped
// text does not escape it a second time.
func EscapeHTML(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRegex.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents removes JavaScript event handler attributes and
// javascript: protocol references from HTML fragments.
func RemoveJavaScriptEvents(s string) string {
	s = jsEventRegex.ReplaceAllString(s, "")
	return jsProtoRegex.ReplaceAllString(s, "")
}
