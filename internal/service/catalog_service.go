package service

import (
	"context"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
)

// CatalogService serves the public lookup lists that course forms reference,
// currently textbooks and topics.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService builds the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListTextbooks returns all textbooks ordered by title.
func (s *CatalogService) ListTextbooks(ctx context.Context) ([]domain.Textbook, error) {
	return s.catalog.ListTextbooks(ctx)
}

// ListTopics returns all topics ordered by name.
func (s *CatalogService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	return s.catalog.ListTopics(ctx)
}
