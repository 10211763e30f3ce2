// Package sanitizer provides pure, idempotent text-cleaning functions applied
// to record fields before validation and persistence.
//
// The package has two layers. The lower layer is a set of small string
// transforms (trimming, whitespace normalization, control-character removal,
// HTML escaping and script stripping). The upper layer combines them into
// per-field sanitizers matching how the course-management records store data:
// person names, course identifiers, emails, Google account ids, plain text
// fields, and rich-text comment bodies.
//
// # Idempotence
//
// Every exported sanitizer satisfies sanitize(sanitize(x)) == sanitize(x).
// This is a hard contract: records may be sanitized both at build time and
// again immediately before saving, and the second pass must be a no-op.
// EscapeHTML preserves this by unescaping before escaping, so already-escaped
// input is not escaped twice.
//
// # Usage
//
//	name := sanitizer.Name("  Chen  Wei ")        // "Chen Wei"
//	email := sanitizer.Email(" Wei@Example.COM ")  // "wei@example.com"
//	body := sanitizer.RichText(rawComment)         // scripts stripped, markup kept
//
// Pipelines can be composed with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveControlChars)
//
// All functions are stateless and safe for concurrent use.
package sanitizer
