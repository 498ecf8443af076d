package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/events"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// EnrollmentService coordinates student enrollment flows and the
// instructor-facing roster.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
	dispatcher  events.Dispatcher
}

// NewEnrollmentService builds the service.
func NewEnrollmentService(enrollments repository.EnrollmentRepository, courses repository.CourseRepository, dispatcher events.Dispatcher) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses, dispatcher: dispatcher}
}

// Enroll signs the acting student up for the course. Students can only
// enroll themselves; the route gate already guaranteed the STUDENT role.
func (s *EnrollmentService) Enroll(ctx context.Context, actor *auth.Claims, courseID string) (*domain.Enrollment, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, err
	}

	enrollment, err := s.enrollments.Enroll(ctx, courseID, actor.UserID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEnrollmentCreated, actor, courseID)
	return enrollment, nil
}

// Drop removes the acting student's own enrollment. The ownership check is
// structural: the delete is keyed on the actor's id, so one student cannot
// drop another's enrollment.
func (s *EnrollmentService) Drop(ctx context.Context, actor *auth.Claims, courseID string) error {
	if err := s.enrollments.Drop(ctx, courseID, actor.UserID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("enrollment", nil)
		}
		return err
	}

	s.publish(ctx, events.EventEnrollmentDropped, actor, courseID)
	return nil
}

// MyEnrollments lists the acting student's enrollments.
func (s *EnrollmentService) MyEnrollments(ctx context.Context, actor *auth.Claims) ([]domain.Enrollment, error) {
	return s.enrollments.ListByStudent(ctx, actor.UserID)
}

// Roster lists enrolled students for a course. Instructors must teach the
// course; admins may view any roster.
func (s *EnrollmentService) Roster(ctx context.Context, actor *auth.Claims, courseID string) ([]domain.RosterEntry, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, err
	}

	if actor.Role != domain.RoleAdmin {
		teaches, err := s.courses.IsInstructor(ctx, courseID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !teaches {
			return nil, apperrors.NewForbidden("not assigned to this course")
		}
	}

	return s.enrollments.Roster(ctx, courseID)
}

func (s *EnrollmentService) publish(ctx context.Context, eventType events.EventType, actor *auth.Claims, courseID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actor.UserID,
		ActorRole: actor.Role,
		Timestamp: time.Now(),
		Payload: events.EnrollmentPayload{
			CourseID:  courseID,
			StudentID: actor.UserID,
		},
	})
}
