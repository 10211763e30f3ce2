package feedback

import (
	"time"

	"github.com/edulab/coursekit/pkg/sanitizer"
)

// ResponseComment mirrors one row of the feedback_response_comments table.
// Visibility lists are stored as text arrays.
type ResponseComment struct {
	CommentID                 int64
	CourseID                  string
	SessionName               string
	QuestionID                string
	ResponseID                string
	GiverEmail                string
	CommentText               string
	GiverSection              string
	ReceiverSection           string
	ShowCommentTo             []string
	ShowGiverNameTo           []string
	VisibilityFollowsQuestion bool
	LastEditorEmail           string
	CreatedAt                 time.Time
	LastEditedAt              time.Time
}

// ToEntity converts the record into its storage row.
func (r Record) ToEntity() ResponseComment {
	return ResponseComment{
		CommentID:                 r.CommentID,
		CourseID:                  r.CourseID,
		SessionName:               r.SessionName,
		QuestionID:                r.QuestionID,
		ResponseID:                r.ResponseID,
		GiverEmail:                r.GiverEmail,
		CommentText:               r.CommentText,
		GiverSection:              r.GiverSection,
		ReceiverSection:           r.ReceiverSection,
		ShowCommentTo:             participantsToStrings(r.ShowCommentTo),
		ShowGiverNameTo:           participantsToStrings(r.ShowGiverNameTo),
		VisibilityFollowsQuestion: r.VisibilityFollowsQuestion,
		LastEditorEmail:           r.LastEditorEmail,
		CreatedAt:                 r.CreatedAt,
		LastEditedAt:              r.LastEditedAt,
	}
}

// FromEntity rebuilds the application record from a storage row. The row
// passes through the builder so legacy rows pick up the same defaults as
// freshly created records.
func FromEntity(e ResponseComment) (Record, error) {
	b, err := NewBuilder(e.CourseID, e.SessionName, e.QuestionID, e.ResponseID, e.GiverEmail)
	if err != nil {
		return Record{}, err
	}
	b = b.WithCommentID(&e.CommentID).
		WithCommentText(&e.CommentText).
		WithShowCommentTo(participantsFromStrings(e.ShowCommentTo)).
		WithShowGiverNameTo(participantsFromStrings(e.ShowGiverNameTo)).
		WithVisibilityFollowsQuestion(&e.VisibilityFollowsQuestion).
		WithCreatedAt(&e.CreatedAt)
	if e.GiverSection != "" {
		b = b.WithGiverSection(&e.GiverSection)
	}
	if e.ReceiverSection != "" {
		b = b.WithReceiverSection(&e.ReceiverSection)
	}
	if e.LastEditorEmail != "" {
		b = b.WithLastEditorEmail(&e.LastEditorEmail)
	}
	b = b.WithLastEditedAt(&e.LastEditedAt)
	return b.Build(), nil
}

func participantsToStrings(viewers []ParticipantType) []string {
	out := make([]string, len(viewers))
	for i, v := range viewers {
		out[i] = string(v)
	}
	return out
}

func participantsFromStrings(values []string) []ParticipantType {
	values = sanitizer.FilterEmpty(values)
	out := make([]ParticipantType, len(values))
	for i, v := range values {
		out[i] = ParticipantType(v)
	}
	return out
}
