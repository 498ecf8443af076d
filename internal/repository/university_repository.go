package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// UniversityRepository encapsulates partner-university persistence.
type UniversityRepository interface {
	Create(ctx context.Context, university *domain.University) error
	Update(ctx context.Context, university *domain.University) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.University, error)
	ListWithCourseCounts(ctx context.Context) ([]domain.UniversitySummary, error)
}

type universityRepository struct {
	pool *pgxpool.Pool
}

// NewUniversityRepository instantiates repository.
func NewUniversityRepository(pool *pgxpool.Pool) UniversityRepository {
	return &universityRepository{pool: pool}
}

func (r *universityRepository) Create(ctx context.Context, university *domain.University) error {
	const query = `
        INSERT INTO universities (name, country)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		university.Name,
		university.Country,
	).Scan(&university.ID, &university.CreatedAt, &university.UpdatedAt)
}

func (r *universityRepository) Update(ctx context.Context, university *domain.University) error {
	const query = `
        UPDATE universities SET name=$1, country=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		university.Name,
		university.Country,
		university.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *universityRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM universities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *universityRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	const query = `
        SELECT id, name, country, created_at, updated_at
        FROM universities WHERE id=$1`

	var university domain.University
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&university.ID,
		&university.Name,
		&university.Country,
		&university.CreatedAt,
		&university.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &university, nil
}

func (r *universityRepository) ListWithCourseCounts(ctx context.Context) ([]domain.UniversitySummary, error) {
	const query = `
        SELECT u.id, u.name, u.country, COUNT(DISTINCT c.id) AS course_count
        FROM universities u
        LEFT JOIN courses c ON c.university_id = u.id
        GROUP BY u.id, u.name, u.country
        ORDER BY u.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.UniversitySummary
	for rows.Next() {
		var summary domain.UniversitySummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Country,
			&summary.CourseCount,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
