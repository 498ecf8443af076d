package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// CatalogRepository reads the shared lookup lists referenced by courses.
type CatalogRepository interface {
	ListTextbooks(ctx context.Context) ([]domain.Textbook, error)
	ListTopics(ctx context.Context) ([]domain.Topic, error)
}

type catalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository instantiates repository.
func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) ListTextbooks(ctx context.Context) ([]domain.Textbook, error) {
	const query = `
        SELECT id, title, author FROM textbooks
        ORDER BY title ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var textbooks []domain.Textbook
	for rows.Next() {
		var textbook domain.Textbook
		if err := rows.Scan(&textbook.ID, &textbook.Title, &textbook.Author); err != nil {
			return nil, err
		}
		textbooks = append(textbooks, textbook)
	}
	return textbooks, rows.Err()
}

func (r *catalogRepository) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	const query = `
        SELECT id, name FROM topics
        ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.ID, &topic.Name); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}
