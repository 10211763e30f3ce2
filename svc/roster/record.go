package roster

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/edulab/coursekit/pkg/sanitizer"
	"github.com/edulab/coursekit/pkg/validator"
)

// DefaultSection is the sentinel section for students not yet assigned one.
const DefaultSection = "None"

// Course-join status labels exposed to callers rendering rosters.
const (
	StatusJoined    = "Joined"
	StatusYetToJoin = "Yet to Join"
)

// DefaultTimestamp marks records whose real creation or update time is
// unknown, typically records converted from legacy rows.
var DefaultTimestamp = time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)

// UpdateStatus is a transient marker attached to records flowing through a
// bulk enrollment update. It is never persisted.
type UpdateStatus int

const (
	StatusError UpdateStatus = iota
	StatusNew
	StatusModified
	StatusUnmodified
	StatusNotInEnrollList
	StatusUnknown
)

func (s UpdateStatus) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnmodified:
		return "unmodified"
	case StatusNotInEnrollList:
		return "not in enroll list"
	default:
		return "unknown"
	}
}

// Record is the application-level view of one enrolled student.
// JSON field names are an external contract: exported snapshots and stored
// history depend on them, so renaming breaks compatibility.
type Record struct {
	Email    string `json:"email"`
	Course   string `json:"course"`
	Name     string `json:"name"`
	GoogleID string `json:"googleId"`
	LastName string `json:"lastName"`
	Comments string `json:"comments"`
	Team     string `json:"team"`
	Section  string `json:"section"`
	Key      string `json:"key"`

	// Bulk-update bookkeeping and row timestamps are not part of the
	// record's business identity.
	UpdateStatus UpdateStatus `json:"-"`
	CreatedAt    time.Time    `json:"-"`
	UpdatedAt    time.Time    `json:"-"`
}

// ID returns the record's natural key in the form email%course,
// e.g. adam@gmail.com%cs1101.
func (r Record) ID() string {
	return r.Email + "%" + r.Course
}

// IdentificationString returns the human-oriented course/email identifier
// used in logs and error messages.
func (r Record) IdentificationString() string {
	return r.Course + "/" + r.Email
}

// IsRegistered reports whether the student has linked a Google account.
func (r Record) IsRegistered() bool {
	return r.GoogleID != ""
}

// Status returns the course-join status label for this student.
func (r Record) Status() string {
	if r.IsRegistered() {
		return StatusJoined
	}
	return StatusYetToJoin
}

// EnrollmentLine renders the record in the pipe-separated form used by the
// bulk enrollment format: section|team|name|email|comments.
func (r Record) EnrollmentLine() string {
	return strings.Join([]string{r.Section, r.Team, r.Name, r.Email, r.Comments}, "|")
}

// EnrollmentMatches reports whether the enrollment columns of two records are
// identical field by field. It deliberately ignores registration state
// (google id, key) and timestamps: two rows describing the same enrollment
// match even if one student has since joined.
func (r Record) EnrollmentMatches(other Record) bool {
	return r.Email == other.Email &&
		r.Course == other.Course &&
		r.Name == other.Name &&
		r.Comments == other.Comments &&
		r.Team == other.Team &&
		r.Section == other.Section
}

// BusinessEqual reports whether two records serialize to the same canonical
// form, ignoring JSON field order and all transient fields.
func (r Record) BusinessEqual(other Record) bool {
	return canonicalEqual(r, other)
}

// Validate checks every field against the roster format rules and returns
// the aggregated violations as a validator.ValidationErrors, or nil if the
// record is valid. Checks are additive: all violations are reported together,
// in field order. Validation never rejects a record outright; the caller
// decides whether to refuse or proceed.
func (r Record) Validate() error {
	rules := make([]validator.Rule, 0, 16)

	// An empty google id just means the student has not joined yet.
	if r.IsRegistered() {
		rules = append(rules,
			validator.ValidGoogleID("googleId", r.GoogleID),
			validator.MaxLenString("googleId", r.GoogleID, validator.MaxGoogleIDLen),
		)
	}

	rules = append(rules,
		validator.RequiredString("course", r.Course),
		validator.MaxLenString("course", r.Course, validator.MaxCourseIDLen),
		validator.ValidCourseID("course", r.Course),

		validator.ValidEmail("email", r.Email),
		validator.MaxLenString("email", r.Email, validator.MaxEmailLen),

		validator.MaxLenString("team", r.Team, validator.MaxTeamNameLen),
		validator.ValidPersonName("team", r.Team),

		validator.MaxLenString("section", r.Section, validator.MaxSectionNameLen),
		validator.ValidPersonName("section", r.Section),

		validator.MaxLenString("comments", r.Comments, validator.MaxStudentCommentsLen),

		validator.RequiredString("name", r.Name),
		validator.MaxLenString("name", r.Name, validator.MaxPersonNameLen),
		validator.ValidPersonName("name", r.Name),
		validator.NoSurroundingWhitespace("name", r.Name),
	)

	return validator.Apply(rules...)
}

// Sanitized returns a copy of the record with its free-text and identifier
// fields cleaned for persistence. Applying it to an already sanitized record
// is a no-op.
func (r Record) Sanitized() Record {
	r.GoogleID = sanitizer.GoogleID(r.GoogleID)
	r.Name = sanitizer.Name(r.Name)
	r.LastName = sanitizer.Name(r.LastName)
	r.Comments = sanitizer.TextField(r.Comments)
	return r
}

// canonicalEqual compares two values through their JSON form, which makes the
// comparison independent of field order.
func canonicalEqual(a, b any) bool {
	av, aerr := canonicalValue(a)
	bv, berr := canonicalValue(b)
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
