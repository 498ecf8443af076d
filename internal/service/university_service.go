package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// UniversityService manages partner universities. Mutations are admin-only
// at the route; listing is public.
type UniversityService struct {
	universities repository.UniversityRepository
}

// NewUniversityService builds the service.
func NewUniversityService(universities repository.UniversityRepository) *UniversityService {
	return &UniversityService{universities: universities}
}

// Create adds a partner university.
func (s *UniversityService) Create(ctx context.Context, name, country string) (*domain.University, error) {
	if name == "" || country == "" {
		return nil, apperrors.NewValidationError("name and country are required", nil)
	}

	university := &domain.University{Name: name, Country: country}
	if err := s.universities.Create(ctx, university); err != nil {
		return nil, err
	}
	return university, nil
}

// Update modifies a university.
func (s *UniversityService) Update(ctx context.Context, id, name, country string) (*domain.University, error) {
	if name == "" || country == "" {
		return nil, apperrors.NewValidationError("name and country are required", nil)
	}

	university, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	university.Name = name
	university.Country = country

	if err := s.universities.Update(ctx, university); err != nil {
		return nil, err
	}
	return university, nil
}

// Delete removes a university and, by cascade, its courses.
func (s *UniversityService) Delete(ctx context.Context, id string) error {
	if err := s.universities.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("university", nil)
		}
		return err
	}
	return nil
}

// Get returns a single university.
func (s *UniversityService) Get(ctx context.Context, id string) (*domain.University, error) {
	university, err := s.universities.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("university", nil)
		}
		return nil, err
	}
	return university, nil
}

// List returns all universities with their course counts.
func (s *UniversityService) List(ctx context.Context) ([]domain.UniversitySummary, error) {
	return s.universities.ListWithCourseCounts(ctx)
}
