package roster

// Patch carries a partial enrollment update. Nil fields were not supplied
// and keep the stored value when the patch is applied, so an update form
// that omits a column never wipes it.
type Patch struct {
	Email    *string
	Name     *string
	GoogleID *string
	Team     *string
	Comments *string
	Section  *string
}

// Apply merges the patch over the stored record and returns the result.
// The receiver is not modified.
func (r Record) Apply(p Patch) Record {
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Name != nil {
		r.Name = *p.Name
		r.LastName = deriveLastName(r.Name)
	}
	if p.GoogleID != nil {
		r.GoogleID = *p.GoogleID
	}
	if p.Team != nil {
		r.Team = *p.Team
	}
	if p.Comments != nil {
		r.Comments = *p.Comments
	}
	if p.Section != nil {
		r.Section = *p.Section
	}
	return r
}

// EmailChanged reports whether applying the patch would move the student to
// a different email address.
func (p Patch) EmailChanged(stored Record) bool {
	return p.Email != nil && *p.Email != stored.Email
}

// TeamChanged reports whether applying the patch would move the student to
// a different team.
func (p Patch) TeamChanged(stored Record) bool {
	return p.Team != nil && *p.Team != stored.Team
}

// SectionChanged reports whether applying the patch would move the student
// to a different section.
func (p Patch) SectionChanged(stored Record) bool {
	return p.Section != nil && *p.Section != stored.Section
}
