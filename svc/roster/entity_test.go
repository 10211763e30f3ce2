package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/coursekit/svc/roster"
)

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	rec, err := roster.NewBuilder("cs1101", "Ivan Petrov", "ivan@example.com").
		WithGoogleID(ptr("ivan.petrov")).
		WithTeam(ptr("Team A")).
		WithSection(ptr("Tutorial 1")).
		WithComments(ptr("exchange student")).
		WithKey(ptr("regkey-1")).
		WithCreatedAt(&created).
		WithUpdatedAt(&created).
		Build()
	require.NoError(t, err)

	restored, err := roster.FromEntity(rec.ToEntity())
	require.NoError(t, err)
	assert.True(t, rec.BusinessEqual(restored))
	assert.Equal(t, rec.CreatedAt, restored.CreatedAt)
	assert.Equal(t, rec.UpdatedAt, restored.UpdatedAt)
}

func TestFromEntityAppliesDefaults(t *testing.T) {
	t.Parallel()

	// Legacy rows may carry empty sections and zero timestamps.
	rec, err := roster.FromEntity(roster.CourseStudent{
		CourseID: "cs1101",
		Email:    "ivan@example.com",
		Name:     "Ivan Petrov",
	})
	require.NoError(t, err)

	assert.Equal(t, roster.DefaultSection, rec.Section)
	assert.Equal(t, roster.DefaultTimestamp, rec.CreatedAt)
	assert.Equal(t, roster.DefaultTimestamp, rec.UpdatedAt)
	assert.Equal(t, "Petrov", rec.LastName)
}
