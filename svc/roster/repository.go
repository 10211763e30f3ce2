package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulab/coursekit/pkg/logger"
	"github.com/edulab/coursekit/pkg/pg"
)

// Repository persists roster records in the course_students table.
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

const studentColumns = `course_id, email, name, google_id, last_name, comments, team_name, section_name, registration_key, created_at, updated_at`

// Upsert sanitizes the record and writes it, replacing any existing row for
// the same course and email.
func (r *Repository) Upsert(ctx context.Context, rec Record) error {
	e := rec.Sanitized().ToEntity()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO course_students (course_id, email, name, google_id, last_name, comments, team_name, section_name, registration_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (course_id, email) DO UPDATE SET
			name = EXCLUDED.name,
			google_id = EXCLUDED.google_id,
			last_name = EXCLUDED.last_name,
			comments = EXCLUDED.comments,
			team_name = EXCLUDED.team_name,
			section_name = EXCLUDED.section_name,
			registration_key = EXCLUDED.registration_key,
			updated_at = now()`,
		e.CourseID, e.Email, e.Name, e.GoogleID, e.LastName, e.Comments, e.TeamName, e.SectionName, e.RegistrationKey)
	if err != nil {
		return fmt.Errorf("upsert student %s: %w", rec.IdentificationString(), err)
	}
	r.log.DebugContext(ctx, "student upserted",
		logger.Component("roster"),
		logger.CourseID(rec.Course),
		logger.StudentEmail(rec.Email))
	return nil
}

// Get fetches one student by course and email. Returns ErrNotFound when no
// row matches.
func (r *Repository) Get(ctx context.Context, courseID, email string) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM course_students
		WHERE course_id = $1 AND email = $2`, courseID, email)
	e, err := scanStudent(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get student %s/%s: %w", courseID, email, err)
	}
	rec, err := FromEntity(e)
	if err != nil {
		return Record{}, fmt.Errorf("rebuild student %s/%s: %w", courseID, email, err)
	}
	return rec, nil
}

// ListByCourse returns every student enrolled in the course, ordered by
// section, team and name.
func (r *Repository) ListByCourse(ctx context.Context, courseID string) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+studentColumns+`
		FROM course_students
		WHERE course_id = $1
		ORDER BY section_name, team_name, name`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list students for %s: %w", courseID, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		e, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		rec, err := FromEntity(e)
		if err != nil {
			return nil, fmt.Errorf("rebuild student %s/%s: %w", e.CourseID, e.Email, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students for %s: %w", courseID, err)
	}
	return records, nil
}

// Delete removes one student row. Deleting a missing row is not an error.
func (r *Repository) Delete(ctx context.Context, courseID, email string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM course_students WHERE course_id = $1 AND email = $2`, courseID, email)
	if err != nil {
		return fmt.Errorf("delete student %s/%s: %w", courseID, email, err)
	}
	return nil
}

func scanStudent(row pgx.Row) (CourseStudent, error) {
	var e CourseStudent
	err := row.Scan(&e.CourseID, &e.Email, &e.Name, &e.GoogleID, &e.LastName,
		&e.Comments, &e.TeamName, &e.SectionName, &e.RegistrationKey,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}
