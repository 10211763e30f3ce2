package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/edulab/coursekit/pkg/sanitizer"
)

// Builder assembles a Record field by field. Optional setters take pointers:
// a nil pointer means "not provided" and leaves the documented default in
// place, so callers translating sparse input (CSV rows, API payloads) can
// pass what they have without special-casing absent values.
type Builder struct {
	rec Record
}

// NewBuilder starts a record for the given course with the required identity
// fields. The name is sanitized immediately so the derived last name is
// computed from the cleaned form.
func NewBuilder(courseID, name, email string) *Builder {
	b := &Builder{rec: Record{
		Course:       courseID,
		Name:         sanitizer.Name(name),
		Email:        email,
		Section:      DefaultSection,
		UpdateStatus: StatusUnknown,
		CreatedAt:    DefaultTimestamp,
		UpdatedAt:    DefaultTimestamp,
	}}
	b.rec.LastName = deriveLastName(b.rec.Name)
	return b
}

// WithGoogleID sets the linked account id. Nil leaves the record unregistered.
func (b *Builder) WithGoogleID(id *string) *Builder {
	if id == nil {
		b.rec.GoogleID = ""
	} else {
		b.rec.GoogleID = sanitizer.GoogleID(*id)
	}
	return b
}

// WithLastName overrides the last name derived from the full name. Nil keeps
// the derived value.
func (b *Builder) WithLastName(lastName *string) *Builder {
	if lastName != nil {
		b.rec.LastName = *lastName
	}
	return b
}

// WithComments sets the enrollment comment. Nil means no comment.
func (b *Builder) WithComments(comments *string) *Builder {
	if comments == nil {
		b.rec.Comments = ""
	} else {
		b.rec.Comments = sanitizer.TextField(*comments)
	}
	return b
}

// WithTeam sets the team name. Nil leaves the student teamless.
func (b *Builder) WithTeam(team *string) *Builder {
	if team == nil {
		b.rec.Team = ""
	} else {
		b.rec.Team = *team
	}
	return b
}

// WithSection sets the section name. Nil falls back to DefaultSection.
func (b *Builder) WithSection(section *string) *Builder {
	if section == nil {
		b.rec.Section = DefaultSection
	} else {
		b.rec.Section = *section
	}
	return b
}

// WithKey sets the registration key. Nil means no key has been issued.
func (b *Builder) WithKey(key *string) *Builder {
	if key == nil {
		b.rec.Key = ""
	} else {
		b.rec.Key = *key
	}
	return b
}

// WithUpdateStatus sets the bulk-update marker. Nil means StatusUnknown.
func (b *Builder) WithUpdateStatus(status *UpdateStatus) *Builder {
	if status == nil {
		b.rec.UpdateStatus = StatusUnknown
	} else {
		b.rec.UpdateStatus = *status
	}
	return b
}

// WithCreatedAt sets the creation time. Nil or zero falls back to
// DefaultTimestamp.
func (b *Builder) WithCreatedAt(t *time.Time) *Builder {
	if t == nil || t.IsZero() {
		b.rec.CreatedAt = DefaultTimestamp
	} else {
		b.rec.CreatedAt = *t
	}
	return b
}

// WithUpdatedAt sets the last update time. Nil or zero falls back to
// DefaultTimestamp.
func (b *Builder) WithUpdatedAt(t *time.Time) *Builder {
	if t == nil || t.IsZero() {
		b.rec.UpdatedAt = DefaultTimestamp
	} else {
		b.rec.UpdatedAt = *t
	}
	return b
}

// Build returns the assembled record. It fails with ErrMissingRequiredField
// when any of the identity fields (course, name, email) is blank. Format
// violations are left to Validate.
func (b *Builder) Build() (Record, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"course", b.rec.Course},
		{"name", b.rec.Name},
		{"email", b.rec.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return Record{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, f.name)
		}
	}
	return b.rec, nil
}

// deriveLastName extracts the last whitespace-separated word of a full name.
// A single-word name is its own last name.
func deriveLastName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}
