package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// EnrollmentRepository encapsulates enrollment persistence.
type EnrollmentRepository interface {
	Enroll(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error)
	Drop(ctx context.Context, courseID, studentID string) error
	Exists(ctx context.Context, courseID, studentID string) (bool, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error)
	Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error)
}

type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository instantiates repository.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

// Enroll is idempotent: re-enrolling an already-enrolled student returns
// the existing row.
func (r *enrollmentRepository) Enroll(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error) {
	const insert = `
        INSERT INTO enrollments (course_id, student_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING`

	if _, err := r.pool.Exec(ctx, insert, courseID, studentID); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, course_id, student_id, enrolled_at
        FROM enrollments WHERE course_id=$1 AND student_id=$2`

	var enrollment domain.Enrollment
	if err := r.pool.QueryRow(ctx, query, courseID, studentID).Scan(
		&enrollment.ID,
		&enrollment.CourseID,
		&enrollment.StudentID,
		&enrollment.EnrolledAt,
	); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) Drop(ctx context.Context, courseID, studentID string) error {
	const query = `DELETE FROM enrollments WHERE course_id=$1 AND student_id=$2`

	cmd, err := r.pool.Exec(ctx, query, courseID, studentID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Exists answers the student-is-enrolled ownership check.
func (r *enrollmentRepository) Exists(ctx context.Context, courseID, studentID string) (bool, error) {
	const query = `SELECT 1 FROM enrollments WHERE course_id=$1 AND student_id=$2`

	var one int
	err := r.pool.QueryRow(ctx, query, courseID, studentID).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	const query = `
        SELECT id, course_id, student_id, enrolled_at
        FROM enrollments WHERE student_id=$1
        ORDER BY enrolled_at DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		var enrollment domain.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.CourseID,
			&enrollment.StudentID,
			&enrollment.EnrolledAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepository) Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error) {
	const query = `
        SELECT e.id, u.id, u.name, u.email, e.enrolled_at
        FROM enrollments e
        JOIN users u ON u.id = e.student_id
        WHERE e.course_id = $1
        ORDER BY e.enrolled_at ASC`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []domain.RosterEntry
	for rows.Next() {
		var entry domain.RosterEntry
		if err := rows.Scan(
			&entry.EnrollmentID,
			&entry.StudentID,
			&entry.StudentName,
			&entry.StudentEmail,
			&entry.EnrolledAt,
		); err != nil {
			return nil, err
		}
		roster = append(roster, entry)
	}
	return roster, rows.Err()
}
