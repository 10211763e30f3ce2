package feedback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/coursekit/svc/feedback"
)

func ptr[T any](v T) *T { return &v }

func newComment(t *testing.T) *feedback.Builder {
	t.Helper()
	b, err := feedback.NewBuilder("cs1101", "First feedback session", "q1", "resp1", "giver@example.com")
	require.NoError(t, err)
	return b
}

func TestNewBuilderRejectsBlankRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   [5]string
		blamed string
	}{
		{name: "blank course", args: [5]string{"", "s", "q", "r", "g@example.com"}, blamed: "courseId"},
		{name: "blank session", args: [5]string{"c", "  ", "q", "r", "g@example.com"}, blamed: "feedbackSessionName"},
		{name: "blank question", args: [5]string{"c", "s", "", "r", "g@example.com"}, blamed: "feedbackQuestionId"},
		{name: "blank response", args: [5]string{"c", "s", "q", "", "g@example.com"}, blamed: "feedbackResponseId"},
		{name: "blank giver", args: [5]string{"c", "s", "q", "r", ""}, blamed: "giverEmail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := feedback.NewBuilder(tt.args[0], tt.args[1], tt.args[2], tt.args[3], tt.args[4])
			require.ErrorIs(t, err, feedback.ErrMissingRequiredField)
			assert.ErrorContains(t, err, tt.blamed)
		})
	}
}

func TestBuilderDefaults(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	rec := newComment(t).Build()
	after := time.Now().UTC()

	assert.Equal(t, "cs1101", rec.CourseID)
	assert.Equal(t, "First feedback session", rec.SessionName)
	assert.Equal(t, "q1", rec.QuestionID)
	assert.Equal(t, "resp1", rec.ResponseID)
	assert.Equal(t, "giver@example.com", rec.GiverEmail)

	assert.Zero(t, rec.CommentID)
	assert.Empty(t, rec.CommentText)
	assert.Equal(t, feedback.DefaultSection, rec.GiverSection)
	assert.Equal(t, feedback.DefaultSection, rec.ReceiverSection)
	assert.Empty(t, rec.ShowCommentTo)
	assert.Empty(t, rec.ShowGiverNameTo)
	assert.True(t, rec.VisibilityFollowsQuestion)

	assert.False(t, rec.CreatedAt.Before(before))
	assert.False(t, rec.CreatedAt.After(after))
	assert.Equal(t, rec.GiverEmail, rec.LastEditorEmail)
	assert.Equal(t, rec.CreatedAt, rec.LastEditedAt)
}

func TestBuilderNilEqualsUnset(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	plain := newComment(t).WithCreatedAt(&created).Build()
	withNils := newComment(t).
		WithCreatedAt(&created).
		WithCommentID(nil).
		WithCommentText(nil).
		WithGiverSection(nil).
		WithReceiverSection(nil).
		WithShowCommentTo(nil).
		WithShowGiverNameTo(nil).
		WithVisibilityFollowsQuestion(nil).
		WithLastEditorEmail(nil).
		WithLastEditedAt(nil).
		Build()

	assert.Equal(t, plain, withNils)
}

func TestBuilderExplicitValues(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	edited := created.Add(2 * time.Hour)

	rec := newComment(t).
		WithCommentID(ptr(int64(42))).
		WithCommentText(ptr("good point")).
		WithGiverSection(ptr("Tutorial 1")).
		WithReceiverSection(ptr("Tutorial 2")).
		WithShowCommentTo([]feedback.ParticipantType{feedback.ParticipantInstructors, feedback.ParticipantReceiver}).
		WithShowGiverNameTo([]feedback.ParticipantType{feedback.ParticipantInstructors}).
		WithVisibilityFollowsQuestion(ptr(false)).
		WithCreatedAt(&created).
		WithLastEditorEmail(ptr("editor@example.com")).
		WithLastEditedAt(&edited).
		Build()

	assert.Equal(t, int64(42), rec.CommentID)
	assert.Equal(t, "good point", rec.CommentText)
	assert.Equal(t, "Tutorial 1", rec.GiverSection)
	assert.Equal(t, "Tutorial 2", rec.ReceiverSection)
	assert.False(t, rec.VisibilityFollowsQuestion)
	assert.Equal(t, created, rec.CreatedAt)
	assert.Equal(t, "editor@example.com", rec.LastEditorEmail)
	assert.Equal(t, edited, rec.LastEditedAt)
}

func TestBuilderLastEditDefaultsFollowCreation(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	// Setter order must not matter: the edit-time default resolves against
	// the final creation time.
	rec := newComment(t).
		WithLastEditedAt(nil).
		WithCreatedAt(&created).
		Build()

	assert.Equal(t, created, rec.LastEditedAt)
}

func TestBuilderCopiesVisibilityLists(t *testing.T) {
	t.Parallel()

	viewers := []feedback.ParticipantType{feedback.ParticipantInstructors}
	rec := newComment(t).WithShowCommentTo(viewers).Build()

	viewers[0] = feedback.ParticipantStudents
	assert.True(t, rec.IsVisibleTo(feedback.ParticipantInstructors))
	assert.False(t, rec.IsVisibleTo(feedback.ParticipantStudents))
}
