package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlatformTotals aggregates platform-wide counts for admin and analyst
// dashboards.
type PlatformTotals struct {
	Users        int `json:"users"`
	Students     int `json:"students"`
	Instructors  int `json:"instructors"`
	Universities int `json:"universities"`
	Courses      int `json:"courses"`
	Enrollments  int `json:"enrollments"`
}

// CourseEnrollmentCount pairs a course with its enrollment count.
type CourseEnrollmentCount struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Count      int    `json:"count"`
}

// StatsRepository runs the dashboard aggregation queries.
type StatsRepository interface {
	PlatformTotals(ctx context.Context) (*PlatformTotals, error)
	TopCoursesByEnrollment(ctx context.Context, limit int) ([]CourseEnrollmentCount, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository instantiates repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) PlatformTotals(ctx context.Context) (*PlatformTotals, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM users WHERE role='STUDENT'),
            (SELECT COUNT(*) FROM users WHERE role='INSTRUCTOR'),
            (SELECT COUNT(*) FROM universities),
            (SELECT COUNT(*) FROM courses),
            (SELECT COUNT(*) FROM enrollments)`

	var totals PlatformTotals
	if err := r.pool.QueryRow(ctx, query).Scan(
		&totals.Users,
		&totals.Students,
		&totals.Instructors,
		&totals.Universities,
		&totals.Courses,
		&totals.Enrollments,
	); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *statsRepository) TopCoursesByEnrollment(ctx context.Context, limit int) ([]CourseEnrollmentCount, error) {
	const query = `
        SELECT c.id, c.name, COUNT(e.id) AS enrollment_count
        FROM courses c
        LEFT JOIN enrollments e ON e.course_id = c.id
        GROUP BY c.id, c.name
        ORDER BY enrollment_count DESC, c.name ASC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []CourseEnrollmentCount
	for rows.Next() {
		var count CourseEnrollmentCount
		if err := rows.Scan(&count.CourseID, &count.CourseName, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}
