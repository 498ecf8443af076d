package service

import (
	"context"

	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/persistence"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// Dashboard is the role-dependent aggregate view.
type Dashboard struct {
	Role        domain.Role                        `json:"role"`
	Enrollments []domain.Enrollment                `json:"enrollments,omitempty"`
	Teaching    []domain.Course                    `json:"teaching,omitempty"`
	Totals      *repository.PlatformTotals         `json:"totals,omitempty"`
	TopCourses  []repository.CourseEnrollmentCount `json:"top_courses,omitempty"`
}

// DashboardService assembles per-role dashboards with a cache-aside layer
// over the heavier aggregate queries.
type DashboardService struct {
	stats       repository.StatsRepository
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
	cache       *persistence.Cache
}

// NewDashboardService builds the service. Cache may be nil, in which case
// every read goes to the store.
func NewDashboardService(stats repository.StatsRepository, enrollments repository.EnrollmentRepository, courses repository.CourseRepository, cache *persistence.Cache) *DashboardService {
	return &DashboardService{stats: stats, enrollments: enrollments, courses: courses, cache: cache}
}

// For builds the dashboard for the acting user. The role switch is
// exhaustive; an unrecognized role is an integrity error.
func (s *DashboardService) For(ctx context.Context, actor *auth.Claims) (*Dashboard, error) {
	dashboard := &Dashboard{Role: actor.Role}

	switch actor.Role {
	case domain.RoleStudent:
		enrollments, err := s.enrollments.ListByStudent(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		dashboard.Enrollments = enrollments

	case domain.RoleInstructor:
		teaching, err := s.courses.ListByInstructor(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		dashboard.Teaching = teaching

	case domain.RoleAdmin:
		totals, err := s.platformTotals(ctx)
		if err != nil {
			return nil, err
		}
		dashboard.Totals = totals

	case domain.RoleDataAnalyst:
		totals, err := s.platformTotals(ctx)
		if err != nil {
			return nil, err
		}
		dashboard.Totals = totals

		top, err := s.topCourses(ctx)
		if err != nil {
			return nil, err
		}
		dashboard.TopCourses = top

	default:
		return nil, apperrors.NewIntegrityError("unrecognized role in session claims", nil)
	}

	return dashboard, nil
}

func (s *DashboardService) platformTotals(ctx context.Context) (*repository.PlatformTotals, error) {
	var totals repository.PlatformTotals
	hit, err := s.cache.Get(ctx, "dashboard:totals", &totals)
	if err == nil && hit {
		return &totals, nil
	}

	fresh, err := s.stats.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, "dashboard:totals", fresh)
	return fresh, nil
}

func (s *DashboardService) topCourses(ctx context.Context) ([]repository.CourseEnrollmentCount, error) {
	var top []repository.CourseEnrollmentCount
	hit, err := s.cache.Get(ctx, "dashboard:top_courses", &top)
	if err == nil && hit {
		return top, nil
	}

	fresh, err := s.stats.TopCoursesByEnrollment(ctx, 10)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, "dashboard:top_courses", fresh)
	return fresh, nil
}
