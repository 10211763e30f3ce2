package faculty_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/coursekit/svc/faculty"
)

func TestNewPrivilegesPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role    string
		allowed []faculty.Permission
		denied  []faculty.Permission
	}{
		{
			role: faculty.RoleCoOwner,
			allowed: []faculty.Permission{
				faculty.CanModifyCourse,
				faculty.CanModifyInstructor,
				faculty.CanModifySession,
				faculty.CanModifyStudent,
				faculty.CanViewStudentInSections,
				faculty.CanViewSessionInSections,
				faculty.CanSubmitSessionInSections,
				faculty.CanModifySessionCommentsInSections,
			},
		},
		{
			role: faculty.RoleManager,
			allowed: []faculty.Permission{
				faculty.CanModifyInstructor,
				faculty.CanModifySession,
				faculty.CanModifyStudent,
				faculty.CanViewStudentInSections,
			},
			denied: []faculty.Permission{faculty.CanModifyCourse},
		},
		{
			role: faculty.RoleObserver,
			allowed: []faculty.Permission{
				faculty.CanViewStudentInSections,
				faculty.CanViewSessionInSections,
			},
			denied: []faculty.Permission{
				faculty.CanModifyCourse,
				faculty.CanSubmitSessionInSections,
				faculty.CanModifySessionCommentsInSections,
			},
		},
		{
			role: faculty.RoleTutor,
			allowed: []faculty.Permission{
				faculty.CanViewStudentInSections,
				faculty.CanViewSessionInSections,
				faculty.CanSubmitSessionInSections,
			},
			denied: []faculty.Permission{
				faculty.CanModifyCourse,
				faculty.CanModifySessionCommentsInSections,
			},
		},
		{
			role: faculty.RoleCustom,
			denied: []faculty.Permission{
				faculty.CanModifyCourse,
				faculty.CanViewStudentInSections,
			},
		},
		{
			role:   "No Such Role",
			denied: []faculty.Permission{faculty.CanModifyCourse},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			t.Parallel()
			p := faculty.NewPrivileges(tt.role)
			for _, perm := range tt.allowed {
				assert.True(t, p.IsAllowed(perm), "expected %s allowed", perm)
			}
			for _, perm := range tt.denied {
				assert.False(t, p.IsAllowed(perm), "expected %s denied", perm)
			}
		})
	}
}

func TestPresetPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, faculty.NewPrivileges(faculty.RoleCoOwner).HasCoownerPrivileges())
	assert.True(t, faculty.NewPrivileges(faculty.RoleManager).HasManagerPrivileges())
	assert.True(t, faculty.NewPrivileges(faculty.RoleObserver).HasObserverPrivileges())
	assert.True(t, faculty.NewPrivileges(faculty.RoleTutor).HasTutorPrivileges())

	assert.False(t, faculty.NewPrivileges(faculty.RoleManager).HasCoownerPrivileges())

	// A demoted co-owner no longer matches the preset.
	p := faculty.NewPrivileges(faculty.RoleCoOwner).Grant(faculty.CanModifyCourse, false)
	assert.False(t, p.HasCoownerPrivileges())
	assert.True(t, p.HasManagerPrivileges())
}

func TestSectionOverrides(t *testing.T) {
	t.Parallel()

	p := faculty.NewPrivileges(faculty.RoleCustom).
		GrantInSection("Tutorial 1", faculty.CanViewStudentInSections, true)

	assert.False(t, p.IsAllowed(faculty.CanViewStudentInSections))
	assert.True(t, p.IsAllowedInSection("Tutorial 1", faculty.CanViewStudentInSections))
	assert.False(t, p.IsAllowedInSection("Tutorial 2", faculty.CanViewStudentInSections))
	assert.True(t, p.IsAllowedInAnySection(faculty.CanViewStudentInSections))
	assert.False(t, p.IsAllowedInAnySection(faculty.CanModifyStudent))

	t.Run("override can revoke a course-level grant", func(t *testing.T) {
		t.Parallel()
		tutor := faculty.NewPrivileges(faculty.RoleTutor).
			GrantInSection("Tutorial 1", faculty.CanSubmitSessionInSections, false)
		assert.False(t, tutor.IsAllowedInSection("Tutorial 1", faculty.CanSubmitSessionInSections))
		assert.True(t, tutor.IsAllowedInSection("Tutorial 2", faculty.CanSubmitSessionInSections))
	})
}

func TestPrivilegesCopyIsDeep(t *testing.T) {
	t.Parallel()

	original := faculty.NewPrivileges(faculty.RoleTutor).
		GrantInSection("Tutorial 1", faculty.CanViewStudentInSections, true)
	clone := original.Copy()
	clone.CourseLevel[faculty.CanModifyCourse] = true
	clone.SectionLevel["Tutorial 1"][faculty.CanViewStudentInSections] = false

	assert.False(t, original.IsAllowed(faculty.CanModifyCourse))
	assert.True(t, original.IsAllowedInSection("Tutorial 1", faculty.CanViewStudentInSections))
}

func TestPrivilegesJSONRoundTrip(t *testing.T) {
	t.Parallel()

	p := faculty.NewPrivileges(faculty.RoleManager).
		GrantInSection("Tutorial 1", faculty.CanModifySessionCommentsInSections, false)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var restored faculty.Privileges
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, p, restored)
}
