package faculty

import "maps"

// Permission identifies a single instructor capability. The string values
// are frozen: they appear as JSON keys in persisted privilege maps.
type Permission string

const (
	CanModifyCourse     Permission = "canmodifycourse"
	CanModifyInstructor Permission = "canmodifyinstructor"
	CanModifySession    Permission = "canmodifysession"
	CanModifyStudent    Permission = "canmodifystudent"

	// Section-scoped capabilities. These can be overridden per section on
	// top of their course-level value.
	CanViewStudentInSections           Permission = "canviewstudentinsection"
	CanViewSessionInSections           Permission = "canviewsessioninsection"
	CanSubmitSessionInSections         Permission = "cansubmitsessioninsection"
	CanModifySessionCommentsInSections Permission = "canmodifysessioncommentinsection"
)

// Role presets. Any other role string is treated as custom.
const (
	RoleCoOwner  = "Co-owner"
	RoleManager  = "Manager"
	RoleObserver = "Observer"
	RoleTutor    = "Tutor"
	RoleCustom   = "Custom"
)

var allPermissions = []Permission{
	CanModifyCourse,
	CanModifyInstructor,
	CanModifySession,
	CanModifyStudent,
	CanViewStudentInSections,
	CanViewSessionInSections,
	CanSubmitSessionInSections,
	CanModifySessionCommentsInSections,
}

// Privileges is an instructor's permission set: a course-level map and
// optional per-section overrides for the section-scoped permissions.
// JSON field names are frozen; privilege maps are persisted as JSON text.
type Privileges struct {
	CourseLevel  map[Permission]bool            `json:"courseLevel"`
	SectionLevel map[string]map[Permission]bool `json:"sectionLevel,omitempty"`
}

// NewPrivileges returns the permission set for a role preset. Co-owners get
// everything, managers everything except course modification, observers are
// view-only, tutors can view and submit. Custom and unrecognized roles start
// with nothing granted.
func NewPrivileges(role string) Privileges {
	p := Privileges{CourseLevel: make(map[Permission]bool, len(allPermissions))}
	for _, perm := range allPermissions {
		p.CourseLevel[perm] = false
	}

	switch role {
	case RoleCoOwner:
		for _, perm := range allPermissions {
			p.CourseLevel[perm] = true
		}
	case RoleManager:
		for _, perm := range allPermissions {
			p.CourseLevel[perm] = true
		}
		p.CourseLevel[CanModifyCourse] = false
	case RoleObserver:
		p.CourseLevel[CanViewStudentInSections] = true
		p.CourseLevel[CanViewSessionInSections] = true
	case RoleTutor:
		p.CourseLevel[CanViewStudentInSections] = true
		p.CourseLevel[CanViewSessionInSections] = true
		p.CourseLevel[CanSubmitSessionInSections] = true
	}
	return p
}

// IsAllowed reports the course-level answer for a permission.
func (p Privileges) IsAllowed(perm Permission) bool {
	return p.CourseLevel[perm]
}

// IsAllowedInSection reports whether the permission holds in the given
// section, consulting the section override first and falling back to the
// course level.
func (p Privileges) IsAllowedInSection(section string, perm Permission) bool {
	if overrides, ok := p.SectionLevel[section]; ok {
		if v, ok := overrides[perm]; ok {
			return v
		}
	}
	return p.CourseLevel[perm]
}

// IsAllowedInAnySection reports whether the permission holds in at least one
// section, counting the course-level grant as applying to every section.
func (p Privileges) IsAllowedInAnySection(perm Permission) bool {
	if p.CourseLevel[perm] {
		return true
	}
	for _, overrides := range p.SectionLevel {
		if overrides[perm] {
			return true
		}
	}
	return false
}

// Grant sets a course-level permission and returns the updated set.
func (p Privileges) Grant(perm Permission, allowed bool) Privileges {
	out := p.Copy()
	out.CourseLevel[perm] = allowed
	return out
}

// GrantInSection sets a per-section override and returns the updated set.
func (p Privileges) GrantInSection(section string, perm Permission, allowed bool) Privileges {
	out := p.Copy()
	if out.SectionLevel == nil {
		out.SectionLevel = make(map[string]map[Permission]bool)
	}
	if out.SectionLevel[section] == nil {
		out.SectionLevel[section] = make(map[Permission]bool)
	}
	out.SectionLevel[section][perm] = allowed
	return out
}

// Copy returns a deep copy; mutating the copy never affects the original.
func (p Privileges) Copy() Privileges {
	out := Privileges{CourseLevel: maps.Clone(p.CourseLevel)}
	if out.CourseLevel == nil {
		out.CourseLevel = make(map[Permission]bool)
	}
	if p.SectionLevel != nil {
		out.SectionLevel = make(map[string]map[Permission]bool, len(p.SectionLevel))
		for section, overrides := range p.SectionLevel {
			out.SectionLevel[section] = maps.Clone(overrides)
		}
	}
	return out
}

// HasCoownerPrivileges reports whether the course-level grants match the
// co-owner preset exactly.
func (p Privileges) HasCoownerPrivileges() bool { return p.matchesPreset(RoleCoOwner) }

// HasManagerPrivileges reports whether the course-level grants match the
// manager preset exactly.
func (p Privileges) HasManagerPrivileges() bool { return p.matchesPreset(RoleManager) }

// HasObserverPrivileges reports whether the course-level grants match the
// observer preset exactly.
func (p Privileges) HasObserverPrivileges() bool { return p.matchesPreset(RoleObserver) }

// HasTutorPrivileges reports whether the course-level grants match the
// tutor preset exactly.
func (p Privileges) HasTutorPrivileges() bool { return p.matchesPreset(RoleTutor) }

func (p Privileges) matchesPreset(role string) bool {
	preset := NewPrivileges(role)
	for _, perm := range allPermissions {
		if p.CourseLevel[perm] != preset.CourseLevel[perm] {
			return false
		}
	}
	return true
}
