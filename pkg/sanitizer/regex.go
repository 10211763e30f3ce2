package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Script-injection stripping. The s flag keeps multi-line script
	// blocks from slipping through; handlers match quoted or bare values.
	scriptTagRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	jsEventRegex   = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsProtoRegex   = regexp.MustCompile(`(?i)javascript\s*:`)
)
