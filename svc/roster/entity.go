package roster

import "time"

// CourseStudent mirrors one row of the course_students table.
type CourseStudent struct {
	CourseID        string
	Email           string
	Name            string
	GoogleID        string
	LastName        string
	Comments        string
	TeamName        string
	SectionName     string
	RegistrationKey string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ToEntity converts the record into its storage row.
func (r Record) ToEntity() CourseStudent {
	return CourseStudent{
		CourseID:        r.Course,
		Email:           r.Email,
		Name:            r.Name,
		GoogleID:        r.GoogleID,
		LastName:        r.LastName,
		Comments:        r.Comments,
		TeamName:        r.Team,
		SectionName:     r.Section,
		RegistrationKey: r.Key,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromEntity rebuilds the application record from a storage row. The row
// passes through the builder so legacy rows pick up the same defaults as
// freshly created records.
func FromEntity(e CourseStudent) (Record, error) {
	b := NewBuilder(e.CourseID, e.Name, e.Email).
		WithGoogleID(&e.GoogleID).
		WithComments(&e.Comments).
		WithTeam(&e.TeamName).
		WithKey(&e.RegistrationKey).
		WithCreatedAt(&e.CreatedAt).
		WithUpdatedAt(&e.UpdatedAt)
	if e.LastName != "" {
		b = b.WithLastName(&e.LastName)
	}
	if e.SectionName != "" {
		b = b.WithSection(&e.SectionName)
	}
	return b.Build()
}
