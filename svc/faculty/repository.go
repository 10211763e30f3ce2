package faculty

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
var ErrNotFound = errors.New("faculty: instructor not found")

// Repository persists instructor records in the instructors table.
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

const instructorColumns = `course_id, email, google_id, name, registration_key, role, displayed_name, is_archived, is_displayed_to_students, privileges`

// Upsert sanitizes the record and writes it, replacing any existing row for
// the same course and email.
func (r *Repository) Upsert(ctx context.Context, rec Record) error {
	e, err := rec.Sanitized().ToEntity()
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO instructors (course_id, email, google_id, name, registration_key, role, displayed_name, is_archived, is_displayed_to_students, privileges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (course_id, email) DO UPDATE SET
			google_id = EXCLUDED.google_id,
			name = EXCLUDED.name,
			registration_key = EXCLUDED.registration_key,
			role = EXCLUDED.role,
			displayed_name = EXCLUDED.displayed_name,
			is_archived = EXCLUDED.is_archived,
			is_displayed_to_students = EXCLUDED.is_displayed_to_students,
			privileges = EXCLUDED.privileges,
			updated_at = now()`,
		e.CourseID, e.Email, e.GoogleID, e.Name, e.RegistrationKey, e.Role,
		e.DisplayedName, e.IsArchived, e.IsDisplayedToStudents, e.PrivilegesText)
	if err != nil {
		return fmt.Errorf("upsert instructor %s: %w", rec.IdentificationString(), err)
	}
	r.log.DebugContext(ctx, "instructor upserted",
		logger.Component("faculty"),
		logger.CourseID(rec.CourseID),
		logger.InstructorEmail(rec.Email))
	return nil
}

// Get fetches one instructor by course and email. Returns ErrNotFound when
// no row matches.
func (r *Repository) Get(ctx context.Context, courseID, email string) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+instructorColumns+`
		FROM instructors
		WHERE course_id = $1 AND email = $2`, courseID, email)
	e, err := scanInstructor(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get instructor %s/%s: %w", courseID, email, err)
	}
	rec, err := FromEntity(e)
	if err != nil {
		return Record{}, fmt.Errorf("rebuild instructor %s/%s: %w", courseID, email, err)
	}
	return rec, nil
}

// GetByGoogleID fetches the instructor row linking the account to the
// course. Returns ErrNotFound when no row matches.
func (r *Repository) GetByGoogleID(ctx context.Context, courseID, googleID string) (Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+instructorColumns+`
		FROM instructors
		WHERE course_id = $1 AND google_id = $2`, courseID, googleID)
	e, err := scanInstructor(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get instructor %s by google id: %w", courseID, err)
	}
	rec, err := FromEntity(e)
	if err != nil {
		return Record{}, fmt.Errorf("rebuild instructor %s/%s: %w", e.CourseID, e.Email, err)
	}
	return rec, nil
}

// ListByCourse returns every instructor of the course, ordered by name.
func (r *Repository) ListByCourse(ctx context.Context, courseID string) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+instructorColumns+`
		FROM instructors
		WHERE course_id = $1
		ORDER BY name, email`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list instructors for %s: %w", courseID, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		e, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan instructor row: %w", err)
		}
		rec, err := FromEntity(e)
		if err != nil {
			return nil, fmt.Errorf("rebuild instructor %s/%s: %w", e.CourseID, e.Email, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instructors for %s: %w", courseID, err)
	}
	return records, nil
}

// Delete removes one instructor row. Deleting a missing row is not an error.
func (r *Repository) Delete(ctx context.Context, courseID, email string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM instructors WHERE course_id = $1 AND email = $2`, courseID, email)
	if err != nil {
		return fmt.Errorf("delete instructor %s/%s: %w", courseID, email, err)
	}
	return nil
}

func scanInstructor(row pgx.Row) (Instructor, error) {
	var e Instructor
	err := row.Scan(&e.CourseID, &e.Email, &e.GoogleID, &e.Name, &e.RegistrationKey,
		&e.Role, &e.DisplayedName, &e.IsArchived, &e.IsDisplayedToStudents, &e.PrivilegesText)
	return e, err
}
