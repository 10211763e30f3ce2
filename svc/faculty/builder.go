package faculty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/edulab/coursekit/pkg/sanitizer"
)

// ErrMissingRequiredField is returned by Builder.Build when a required
// field is blank after trimming.
var ErrMissingRequiredField = errors.New("faculty: required field cannot be empty")

// Builder assembles a Record field by field. Optional setters take pointers:
// a nil pointer means "not provided" and leaves the documented default in
// place.
type Builder struct {
	rec Record
}

// NewBuilder starts an instructor record with the required identity fields.
// Unless setters change them, the record comes out as an active co-owner
// displayed to students under the default label.
func NewBuilder(courseID, name, email string) *Builder {
	return &Builder{rec: Record{
		CourseID:              sanitizer.CourseID(courseID),
		Name:                  sanitizer.Name(name),
		Email:                 email,
		Role:                  RoleCoOwner,
		DisplayedName:         DefaultDisplayedName,
		IsArchived:            false,
		IsDisplayedToStudents: true,
		Privileges:            NewPrivileges(RoleCoOwner),
	}}
}

// WithGoogleID sets the linked account id. Nil leaves the instructor
// unregistered.
func (b *Builder) WithGoogleID(id *string) *Builder {
	if id == nil {
		b.rec.GoogleID = ""
	} else {
		b.rec.GoogleID = sanitizer.GoogleID(*id)
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

// WithRole sets the role label. Nil falls back to the co-owner role. The
// role label and the privilege set are independent: setting a role does not
// reset privileges.
func (b *Builder) WithRole(role *string) *Builder {
	if role == nil {
		b.rec.Role = RoleCoOwner
	} else {
		b.rec.Role = sanitizer.Name(*role)
	}
	return b
}

// WithDisplayedName sets the label students see. Nil falls back to
// DefaultDisplayedName.
func (b *Builder) WithDisplayedName(name *string) *Builder {
	if name == nil {
		b.rec.DisplayedName = DefaultDisplayedName
	} else {
		b.rec.DisplayedName = sanitizer.Name(*name)
	}
	return b
}

// WithIsArchived sets the archived flag. Nil means not archived.
func (b *Builder) WithIsArchived(archived *bool) *Builder {
	b.rec.IsArchived = archived != nil && *archived
	return b
}

// WithIsDisplayedToStudents sets whether students can see the instructor.
// Nil means displayed.
func (b *Builder) WithIsDisplayedToStudents(displayed *bool) *Builder {
	b.rec.IsDisplayedToStudents = displayed == nil || *displayed
	return b
}

// WithPrivileges sets the permission set. Nil falls back to the co-owner
// preset. The set is deep-copied so later mutation of the argument does not
// leak into the record.
func (b *Builder) WithPrivileges(p *Privileges) *Builder {
	if p == nil {
		b.rec.Privileges = NewPrivileges(RoleCoOwner)
	} else {
		b.rec.Privileges = p.Copy()
	}
	return b
}

// WithPrivilegesJSON sets the permission set from its persisted JSON text.
// Nil or empty falls back to the co-owner preset.
func (b *Builder) WithPrivilegesJSON(text *string) *Builder {
	if text == nil || *text == "" {
		b.rec.Privileges = NewPrivileges(RoleCoOwner)
		return b
	}
	var p Privileges
	if err := unmarshalPrivileges(*text, &p); err != nil {
		b.rec.Privileges = NewPrivileges(RoleCoOwner)
		return b
	}
	b.rec.Privileges = p
	return b
}

// Build returns the assembled record. It fails with ErrMissingRequiredField
// when any of the identity fields (course id, name, email) is blank. Format
// violations are left to Validate.
func (b *Builder) Build() (Record, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"courseId", b.rec.CourseID},
		{"name", b.rec.Name},
		{"email", b.rec.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return Record{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, f.name)
		}
	}
	return b.rec, nil
}
