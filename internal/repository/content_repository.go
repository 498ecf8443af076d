package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// ContentRepository encapsulates lesson content persistence.
type ContentRepository interface {
	Create(ctx context.Context, content *domain.Content) error
	Update(ctx context.Context, content *domain.Content) error
	Delete(ctx context.Context, id, courseID string) error
	GetByID(ctx context.Context, id string) (*domain.Content, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Content, error)
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository instantiates repository.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) Create(ctx context.Context, content *domain.Content) error {
	const query = `
        INSERT INTO contents (course_id, type, body)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		content.CourseID,
		content.Type,
		content.Body,
	).Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
}

func (r *contentRepository) Update(ctx context.Context, content *domain.Content) error {
	const query = `
        UPDATE contents SET type=$1, body=$2, updated_at=NOW()
        WHERE id=$3 AND course_id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		content.Type,
		content.Body,
		content.ID,
		content.CourseID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete is scoped to the course so a content id from another course
// cannot be removed through a mismatched route.
func (r *contentRepository) Delete(ctx context.Context, id, courseID string) error {
	const query = `DELETE FROM contents WHERE id=$1 AND course_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, courseID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*domain.Content, error) {
	const query = `
        SELECT id, course_id, type, body, created_at, updated_at
        FROM contents WHERE id=$1`

	var content domain.Content
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&content.ID,
		&content.CourseID,
		&content.Type,
		&content.Body,
		&content.CreatedAt,
		&content.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Content, error) {
	const query = `
        SELECT id, course_id, type, body, created_at, updated_at
        FROM contents WHERE course_id=$1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []domain.Content
	for rows.Next() {
		var content domain.Content
		if err := rows.Scan(
			&content.ID,
			&content.CourseID,
			&content.Type,
			&content.Body,
			&content.CreatedAt,
			&content.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}
