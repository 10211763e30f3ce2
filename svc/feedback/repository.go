package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulab/coursekit/pkg/logger"
	"github.com/edulab/coursekit/pkg/pg"
)

// ErrNotFound is returned by repository lookups that match no row.
var ErrNotFound = errors.New("feedback: response comment not found")

// Repository persists response comments in the feedback_response_comments
// table.
type Repository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRepository(pool *pgxpool.Pool, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{pool: pool, log: log}
}

const commentColumns = `id, course_id, session_name, question_id, response_id, giver_email, comment_text, giver_section, receiver_section, show_comment_to, show_giver_name_to, visibility_follows_question, last_editor_email, created_at, last_edited_at`

// Create sanitizes and inserts the comment, returning the record with its
// assigned id.
func (r *Repository) Create(ctx context.Context, rec Record) (Record, error) {
	rec = rec.Sanitized()
	e := rec.ToEntity()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO feedback_response_comments
			(course_id, session_name, question_id, response_id, giver_email, comment_text, giver_section, receiver_section, show_comment_to, show_giver_name_to, visibility_follows_question, last_editor_email, created_at, last_edited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		e.CourseID, e.SessionName, e.QuestionID, e.ResponseID, e.GiverEmail,
		e.CommentText, e.GiverSection, e.ReceiverSection, e.ShowCommentTo,
		e.ShowGiverNameTo, e.VisibilityFollowsQuestion, e.LastEditorEmail,
		e.CreatedAt, e.LastEditedAt).Scan(&rec.CommentID)
	if err != nil {
		return Record{}, fmt.Errorf("create comment on response %s: %w", rec.ResponseID, err)
	}
	r.log.DebugContext(ctx, "response comment created",
		logger.Component("feedback"),
		logger.CourseID(rec.CourseID),
		logger.CommentID(rec.CommentID))
	return rec, nil
}

// UpdateText sanitizes and replaces the comment body, recording the editor
// and edit time.
func (r *Repository) UpdateText(ctx context.Context, commentID int64, text, editorEmail string) error {
	clean := Record{CommentText: text}.Sanitized().CommentText
	tag, err := r.pool.Exec(ctx, `
		UPDATE feedback_response_comments
		SET comment_text = $2, last_editor_email = $3, last_edited_at = now()
		WHERE id = $1`, commentID, clean, editorEmail)
	if err != nil {
		return fmt.Errorf("update comment %d: %w", commentID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches one comment by id. Returns ErrNotFound when no row matches.
func (r *Repository) Get(ctx context.Context, commentID int64) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+commentColumns+`
		FROM feedback_response_comments
		WHERE id = $1`, commentID)
	e, err := scanComment(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get comment %d: %w", commentID, err)
	}
	rec, err := FromEntity(e)
	if err != nil {
		return Record{}, fmt.Errorf("rebuild comment %d: %w", commentID, err)
	}
	return rec, nil
}

// ListByResponse returns every comment on the response, oldest first.
func (r *Repository) ListByResponse(ctx context.Context, responseID string) ([]Record, error) {
	return r.list(ctx, `response_id = $1`, responseID)
}

// ListBySession returns every comment in the session, oldest first.
func (r *Repository) ListBySession(ctx context.Context, courseID, sessionName string) ([]Record, error) {
	return r.list(ctx, `course_id = $1 AND session_name = $2`, courseID, sessionName)
}

func (r *Repository) list(ctx context.Context, where string, args ...any) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM feedback_response_comments
		WHERE `+where+`
		ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		e, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		rec, err := FromEntity(e)
		if err != nil {
			return nil, fmt.Errorf("rebuild comment %d: %w", e.CommentID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return records, nil
}

// Delete removes one comment. Deleting a missing row is not an error.
func (r *Repository) Delete(ctx context.Context, commentID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM feedback_response_comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

func scanComment(row pgx.Row) (ResponseComment, error) {
	var e ResponseComment
	err := row.Scan(&e.CommentID, &e.CourseID, &e.SessionName, &e.QuestionID,
		&e.ResponseID, &e.GiverEmail, &e.CommentText, &e.GiverSection,
		&e.ReceiverSection, &e.ShowCommentTo, &e.ShowGiverNameTo,
		&e.VisibilityFollowsQuestion, &e.LastEditorEmail, &e.CreatedAt, &e.LastEditedAt)
	return e, err
}
