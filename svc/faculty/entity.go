package faculty

import (
	"encoding/json"
	"fmt"
)

// Instructor mirrors one row of the instructors table. Privileges travel as
// JSON text because the permission maps are schemaless.
type Instructor struct {
	CourseID              string
	Email                 string
	GoogleID              string
	Name                  string
	RegistrationKey       string
	Role                  string
	DisplayedName         string
	IsArchived            bool
	IsDisplayedToStudents bool
	PrivilegesText        string
}

// ToEntity converts the record into its storage row.
func (r Record) ToEntity() (Instructor, error) {
	text, err := marshalPrivileges(r.Privileges)
	if err != nil {
		return Instructor{}, fmt.Errorf("encode privileges for %s: %w", r.IdentificationString(), err)
	}
	return Instructor{
		CourseID:              r.CourseID,
		Email:                 r.Email,
		GoogleID:              r.GoogleID,
		Name:                  r.Name,
		RegistrationKey:       r.Key,
		Role:                  r.Role,
		DisplayedName:         r.DisplayedName,
		IsArchived:            r.IsArchived,
		IsDisplayedToStudents: r.IsDisplayedToStudents,
		PrivilegesText:        text,
	}, nil
}

// FromEntity rebuilds the application record from a storage row. The row
// passes through the builder so legacy rows pick up the same defaults as
// freshly created records.
func FromEntity(e Instructor) (Record, error) {
	b := NewBuilder(e.CourseID, e.Name, e.Email).
		WithGoogleID(&e.GoogleID).
		WithKey(&e.RegistrationKey).
		WithIsArchived(&e.IsArchived).
		WithIsDisplayedToStudents(&e.IsDisplayedToStudents).
		WithPrivilegesJSON(&e.PrivilegesText)
	if e.Role != "" {
		b = b.WithRole(&e.Role)
	}
	if e.DisplayedName != "" {
		b = b.WithDisplayedName(&e.DisplayedName)
	}
	return b.Build()
}

func marshalPrivileges(p Privileges) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalPrivileges(text string, p *Privileges) error {
	return json.Unmarshal([]byte(text), p)
}
