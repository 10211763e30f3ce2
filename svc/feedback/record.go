package feedback

import (
	"fmt"
	"slices"
	"time"

	"github.com/edulab/coursekit/pkg/sanitizer"
	"github.com/edulab/coursekit/pkg/validator"
)

// DefaultSection is the sentinel section for givers or receivers without an
// assigned section.
const DefaultSection = "None"

// ParticipantType identifies a class of feedback participants for
// visibility purposes. The values are frozen: they appear in persisted
// visibility lists.
type ParticipantType string

const (
	ParticipantGiver               ParticipantType = "GIVER"
	ParticipantReceiver            ParticipantType = "RECEIVER"
	ParticipantOwnTeamMembers      ParticipantType = "OWN_TEAM_MEMBERS"
	ParticipantReceiverTeamMembers ParticipantType = "RECEIVER_TEAM_MEMBERS"
	ParticipantStudents            ParticipantType = "STUDENTS"
	ParticipantInstructors         ParticipantType = "INSTRUCTORS"
)

// Record is the application-level view of one response comment.
// JSON field names are an external contract: exported snapshots and stored
// history depend on them, so renaming breaks compatibility.
type Record struct {
	CommentID   int64  `json:"feedbackResponseCommentId,omitempty"`
	CourseID    string `json:"courseId"`
	SessionName string `json:"feedbackSessionName"`
	QuestionID  string `json:"feedbackQuestionId"`
	ResponseID  string `json:"feedbackResponseId"`
	GiverEmail  string `json:"giverEmail"`

	CommentText     string `json:"commentText"`
	GiverSection    string `json:"giverSection"`
	ReceiverSection string `json:"receiverSection"`

	ShowCommentTo             []ParticipantType `json:"showCommentTo"`
	ShowGiverNameTo           []ParticipantType `json:"showGiverNameTo"`
	VisibilityFollowsQuestion bool              `json:"isVisibilityFollowingFeedbackQuestion"`

	LastEditorEmail string    `json:"lastEditorEmail"`
	CreatedAt       time.Time `json:"createdAt"`
	LastEditedAt    time.Time `json:"lastEditedAt"`
}

func (r Record) String() string {
	return fmt.Sprintf("comment %d on response %s by %s in %s/%s",
		r.CommentID, r.ResponseID, r.GiverEmail, r.CourseID, r.SessionName)
}

// IsVisibleTo reports whether the comment's own visibility list includes
// the viewer type. Callers must check VisibilityFollowsQuestion first; when
// that flag is set the owning question decides.
func (r Record) IsVisibleTo(viewer ParticipantType) bool {
	return slices.Contains(r.ShowCommentTo, viewer)
}

// IsGiverNameVisibleTo reports whether the viewer type may see who wrote
// the comment.
func (r Record) IsGiverNameVisibleTo(viewer ParticipantType) bool {
	return slices.Contains(r.ShowGiverNameTo, viewer)
}

// Validate checks the identity fields against the feedback format rules and
// returns the aggregated violations as a validator.ValidationErrors, or nil
// if the record is valid. All violations are reported together, in field
// order.
func (r Record) Validate() error {
	return validator.Apply(
		validator.RequiredString("courseId", r.CourseID),
		validator.MaxLenString("courseId", r.CourseID, validator.MaxCourseIDLen),
		validator.ValidCourseID("courseId", r.CourseID),

		validator.RequiredString("feedbackSessionName", r.SessionName),
		validator.MaxLenString("feedbackSessionName", r.SessionName, validator.MaxSessionNameLen),
		validator.ValidPersonName("feedbackSessionName", r.SessionName),

		validator.ValidEmail("giverEmail", r.GiverEmail),
		validator.MaxLenString("giverEmail", r.GiverEmail, validator.MaxEmailLen),
	)
}

// Sanitized returns a copy with the comment body cleaned for rich-text
// rendering: script tags, event handlers, and javascript: references are
// stripped while legitimate markup survives. Applying it to an already
// sanitized record is a no-op.
func (r Record) Sanitized() Record {
	r.CommentText = sanitizer.RichText(r.CommentText)
	return r
}

// SortedByCreationTime returns a new slice ordered oldest first. The sort
// is stable and the input slice is left untouched.
func SortedByCreationTime(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}
