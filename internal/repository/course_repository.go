package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// CourseFilter captures catalog search parameters.
type CourseFilter struct {
	UniversityID *string
	ProgramType  *domain.ProgramType
	SearchTerm   *string
	Limit        int
	Offset       int
}

// CourseRepository encapsulates course persistence, including instructor
// assignments.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]domain.Course, error)
	AssignInstructor(ctx context.Context, courseID, instructorID string) error
	RemoveInstructor(ctx context.Context, courseID, instructorID string) error
	IsInstructor(ctx context.Context, courseID, instructorID string) (bool, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error)
}

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository instantiates repository.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

const courseColumns = `id, name, description, program_type, duration_weeks, university_id, textbook_id, created_at, updated_at`

func scanCourse(row pgx.Row, course *domain.Course) error {
	return row.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.ProgramType,
		&course.DurationWeeks,
		&course.UniversityID,
		&course.TextbookID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (name, description, program_type, duration_weeks, university_id, textbook_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		course.Name,
		course.Description,
		course.ProgramType,
		course.DurationWeeks,
		course.UniversityID,
		course.TextbookID,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	const query = `
        UPDATE courses
        SET name=$1, description=$2, program_type=$3, duration_weeks=$4, textbook_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		course.Name,
		course.Description,
		course.ProgramType,
		course.DurationWeeks,
		course.TextbookID,
		course.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	if err := scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id=$1`, id), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, filter CourseFilter) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.UniversityID != nil {
		query += ` AND university_id=$` + itoa(idx)
		args = append(args, *filter.UniversityID)
		idx++
	}
	if filter.ProgramType != nil {
		query += ` AND program_type=$` + itoa(idx)
		args = append(args, *filter.ProgramType)
		idx++
	}
	if filter.SearchTerm != nil {
		query += ` AND (name ILIKE '%' || $` + itoa(idx) + ` || '%' OR description ILIKE '%' || $` + itoa(idx) + ` || '%')`
		args = append(args, *filter.SearchTerm)
		idx++
	}

	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT $` + itoa(idx)
		args = append(args, filter.Limit)
		idx++
	}
	if filter.Offset > 0 {
		query += ` OFFSET $` + itoa(idx)
		args = append(args, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

func (r *courseRepository) AssignInstructor(ctx context.Context, courseID, instructorID string) error {
	const query = `
        INSERT INTO course_instructors (course_id, instructor_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING`

	_, err := r.pool.Exec(ctx, query, courseID, instructorID)
	return err
}

func (r *courseRepository) RemoveInstructor(ctx context.Context, courseID, instructorID string) error {
	const query = `DELETE FROM course_instructors WHERE course_id=$1 AND instructor_id=$2`

	cmd, err := r.pool.Exec(ctx, query, courseID, instructorID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IsInstructor answers the teaches-this-course ownership check.
func (r *courseRepository) IsInstructor(ctx context.Context, courseID, instructorID string) (bool, error) {
	const query = `SELECT 1 FROM course_instructors WHERE course_id=$1 AND instructor_id=$2`

	var one int
	err := r.pool.QueryRow(ctx, query, courseID, instructorID).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *courseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error) {
	const query = `
        SELECT c.id, c.name, c.description, c.program_type, c.duration_weeks, c.university_id, c.textbook_id, c.created_at, c.updated_at
        FROM courses c
        JOIN course_instructors ci ON ci.course_id = c.id
        WHERE ci.instructor_id = $1
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]domain.Course, error) {
	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
