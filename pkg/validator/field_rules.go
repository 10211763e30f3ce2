package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// Maximum lengths for record fields. These are frozen storage constraints;
// loosening them would break compatibility with persisted data.
const (
	MaxCourseIDLen        = 40
	MaxPersonNameLen      = 100
	MaxEmailLen           = 254
	MaxGoogleIDLen        = 254
	MaxTeamNameLen        = 60
	MaxSectionNameLen     = 60
	MaxSessionNameLen     = 38
	MaxStudentCommentsLen = 500
)

var (
	// Course identifiers allow alphanumerics plus a small punctuation set.
	courseIDRegex = regexp.MustCompile(`^[a-zA-Z0-9.$_-]+$`)

	// Google account ids in short or full email form, no whitespace.
	googleIDRegex = regexp.MustCompile(`^[a-zA-Z0-9.@_-]+$`)
)

// ValidCourseID validates the character set of a course identifier.
// Empty strings pass; use RequiredString alongside to report emptiness.
func ValidCourseID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return courseIDRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "may contain only letters, numbers, and the characters . $ _ -",
			TranslationKey: "validation.course_id",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail validates that a string is a valid email address using RFC 5322.
// Unlike the character-set rules, an empty value fails: everywhere an email
// is validated it is also required.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPersonName validates that a display or person name is free of the
// reserved characters used as separators in enrollment lines and ids.
// Empty strings pass.
func ValidPersonName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, "|%")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain the characters | or %",
			TranslationKey: "validation.person_name",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidGoogleID validates the character set of a Google account id.
// Empty strings pass; a student without an id is simply unregistered.
func ValidGoogleID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return googleIDRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "may contain only letters, numbers, and the characters . @ _ -",
			TranslationKey: "validation.google_id",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
