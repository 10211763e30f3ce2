package faculty

import (
	"encoding/json"
	"reflect"

	"github.com/edulab/coursekit/pkg/sanitizer"
	"github.com/edulab/coursekit/pkg/validator"
)

// DefaultDisplayedName is the label shown to students when an instructor
// has not chosen one.
const DefaultDisplayedName = "Instructor"

// Record is the application-level view of one course instructor.
// JSON field names are an external contract: exported snapshots and stored
// history depend on them, so renaming breaks compatibility.
type Record struct {
	GoogleID              string     `json:"googleId"`
	CourseID              string     `json:"courseId"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Key                   string     `json:"key"`
	Role                  string     `json:"role"`
	DisplayedName         string     `json:"displayedName"`
	IsArchived            bool       `json:"isArchived"`
	IsDisplayedToStudents bool       `json:"isDisplayedToStudents"`
	Privileges            Privileges `json:"privileges"`
}

// IdentificationString returns the human-oriented course/email identifier
// used in logs and error messages.
func (r Record) IdentificationString() string {
	return r.CourseID + "/" + r.Email
}

// IsRegistered reports whether the instructor has linked a Google account.
func (r Record) IsRegistered() bool {
	return r.GoogleID != ""
}

// IsCustomRole reports whether the instructor's permissions are managed
// individually rather than through a preset.
func (r Record) IsCustomRole() bool {
	return r.Role == RoleCustom
}

// IsAllowed reports the course-level answer for a permission.
func (r Record) IsAllowed(perm Permission) bool {
	return r.Privileges.IsAllowed(perm)
}

// IsAllowedInSection reports whether the permission holds in the given
// section.
func (r Record) IsAllowedInSection(section string, perm Permission) bool {
	return r.Privileges.IsAllowedInSection(section, perm)
}

// Validate checks every field against the faculty format rules and returns
// the aggregated violations as a validator.ValidationErrors, or nil if the
// record is valid. All violations are reported together, in field order.
func (r Record) Validate() error {
	rules := make([]validator.Rule, 0, 12)

	// An empty google id just means the instructor has not joined yet.
	if r.IsRegistered() {
		rules = append(rules,
			validator.ValidGoogleID("googleId", r.GoogleID),
			validator.MaxLenString("googleId", r.GoogleID, validator.MaxGoogleIDLen),
		)
	}

	rules = append(rules,
		validator.RequiredString("courseId", r.CourseID),
		validator.MaxLenString("courseId", r.CourseID, validator.MaxCourseIDLen),
		validator.ValidCourseID("courseId", r.CourseID),

		validator.RequiredString("name", r.Name),
		validator.MaxLenString("name", r.Name, validator.MaxPersonNameLen),
		validator.ValidPersonName("name", r.Name),

		validator.ValidEmail("email", r.Email),
		validator.MaxLenString("email", r.Email, validator.MaxEmailLen),

		validator.RequiredString("displayedName", r.DisplayedName),
		validator.MaxLenString("displayedName", r.DisplayedName, validator.MaxPersonNameLen),
		validator.ValidPersonName("displayedName", r.DisplayedName),
	)

	return validator.Apply(rules...)
}

// Sanitized returns a copy of the record cleaned for persistence. Names are
// HTML-escaped because they are rendered in pages students see; empty role,
// displayed name, and privilege maps are backfilled with their defaults.
// Applying it to an already sanitized record is a no-op.
func (r Record) Sanitized() Record {
	r.GoogleID = sanitizer.GoogleID(r.GoogleID)
	r.Name = sanitizer.EscapeHTML(sanitizer.Name(r.Name))
	r.Email = sanitizer.Email(r.Email)
	r.CourseID = sanitizer.CourseID(r.CourseID)

	if r.Role == "" {
		r.Role = RoleCoOwner
	} else {
		r.Role = sanitizer.EscapeHTML(sanitizer.Name(r.Role))
	}

	if r.DisplayedName == "" {
		r.DisplayedName = DefaultDisplayedName
	} else {
		r.DisplayedName = sanitizer.EscapeHTML(sanitizer.Name(r.DisplayedName))
	}

	if r.Privileges.CourseLevel == nil {
		r.Privileges = NewPrivileges(RoleCoOwner)
	}
	return r
}

// Equal reports whether two records serialize to the same canonical form,
// ignoring JSON field order.
func (r Record) Equal(other Record) bool {
	av, aerr := canonicalValue(r)
	bv, berr := canonicalValue(other)
	if aerr != nil || berr != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

func canonicalValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
