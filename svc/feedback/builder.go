package feedback

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/edulab/coursekit/pkg/sanitizer"
)

// ErrMissingRequiredField is returned by NewBuilder when one of the linkage
// fields is blank.
var ErrMissingRequiredField = errors.New("feedback: required field cannot be empty")

// Builder assembles a Record. The constructor rejects blank required fields
// immediately; optional setters take pointers where nil means "not provided"
// and yields the documented default.
type Builder struct {
	rec Record

	lastEditorSet bool
	lastEditedSet bool
}

// NewBuilder starts a comment record. It fails with ErrMissingRequiredField
// when any of the linkage fields is blank: a comment cannot exist without
// its course, session, question, response, and giver.
func NewBuilder(courseID, sessionName, questionID, responseID, giverEmail string) (*Builder, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"courseId", courseID},
		{"feedbackSessionName", sessionName},
		{"feedbackQuestionId", questionID},
		{"feedbackResponseId", responseID},
		{"giverEmail", giverEmail},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, f.name)
		}
	}

	return &Builder{rec: Record{
		CourseID:    courseID,
		SessionName: sessionName,
		QuestionID:  questionID,
		ResponseID:  responseID,
		GiverEmail:  giverEmail,

		GiverSection:              DefaultSection,
		ReceiverSection:           DefaultSection,
		ShowCommentTo:             []ParticipantType{},
		ShowGiverNameTo:           []ParticipantType{},
		VisibilityFollowsQuestion: true,
		CreatedAt:                 time.Now().UTC(),
	}}, nil
}

// WithCommentID sets the storage id of an existing comment. Nil means the
// comment has not been persisted yet.
func (b *Builder) WithCommentID(id *int64) *Builder {
	if id != nil {
		b.rec.CommentID = *id
	}
	return b
}

// WithCommentText sets the comment body. Nil means an empty comment.
func (b *Builder) WithCommentText(text *string) *Builder {
	if text == nil {
		b.rec.CommentText = ""
	} else {
		b.rec.CommentText = *text
	}
	return b
}

// WithGiverSection sets the giver's section. Nil falls back to
// DefaultSection.
func (b *Builder) WithGiverSection(section *string) *Builder {
	if section == nil {
		b.rec.GiverSection = DefaultSection
	} else {
		b.rec.GiverSection = *section
	}
	return b
}

// WithReceiverSection sets the receiver's section. Nil falls back to
// DefaultSection.
func (b *Builder) WithReceiverSection(section *string) *Builder {
	if section == nil {
		b.rec.ReceiverSection = DefaultSection
	} else {
		b.rec.ReceiverSection = *section
	}
	return b
}

// WithShowCommentTo sets the comment visibility list. Nil means nobody is
// listed. The list is copied and deduplicated.
func (b *Builder) WithShowCommentTo(viewers []ParticipantType) *Builder {
	b.rec.ShowCommentTo = cleanViewerList(viewers)
	return b
}

// WithShowGiverNameTo sets the giver-name visibility list. Nil means nobody
// is listed. The list is copied and deduplicated.
func (b *Builder) WithShowGiverNameTo(viewers []ParticipantType) *Builder {
	b.rec.ShowGiverNameTo = cleanViewerList(viewers)
	return b
}

func cleanViewerList(viewers []ParticipantType) []ParticipantType {
	if len(viewers) == 0 {
		return []ParticipantType{}
	}
	return sanitizer.Deduplicate(viewers)
}

// WithVisibilityFollowsQuestion sets whether the owning question's
// visibility applies instead of the comment's own lists. Nil means it does.
func (b *Builder) WithVisibilityFollowsQuestion(follows *bool) *Builder {
	b.rec.VisibilityFollowsQuestion = follows == nil || *follows
	return b
}

// WithCreatedAt sets the creation time. Nil keeps the build time.
func (b *Builder) WithCreatedAt(t *time.Time) *Builder {
	if t != nil && !t.IsZero() {
		b.rec.CreatedAt = *t
	}
	return b
}

// WithLastEditorEmail sets who last edited the comment. Nil means it has
// never been edited and the giver is recorded.
func (b *Builder) WithLastEditorEmail(email *string) *Builder {
	if email == nil {
		b.lastEditorSet = false
	} else {
		b.rec.LastEditorEmail = *email
		b.lastEditorSet = true
	}
	return b
}

// WithLastEditedAt sets the last edit time. Nil means it has never been
// edited and the creation time is recorded.
func (b *Builder) WithLastEditedAt(t *time.Time) *Builder {
	if t == nil || t.IsZero() {
		b.lastEditedSet = false
	} else {
		b.rec.LastEditedAt = *t
		b.lastEditedSet = true
	}
	return b
}

// Build returns the assembled record. The edit-tracking defaults resolve
// here so they see the final creation time regardless of setter order.
func (b *Builder) Build() Record {
	rec := b.rec
	if !b.lastEditorSet {
		rec.LastEditorEmail = rec.GiverEmail
	}
	if !b.lastEditedSet {
		rec.LastEditedAt = rec.CreatedAt
	}
	rec.ShowCommentTo = slices.Clone(rec.ShowCommentTo)
	rec.ShowGiverNameTo = slices.Clone(rec.ShowGiverNameTo)
	return rec
}
