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

// CourseInput carries course create/update fields.
type CourseInput struct {
	Name          string
	Description   string
	ProgramType   string
	DurationWeeks int
	UniversityID  string
	TextbookID    *string
}

// CourseService coordinates catalog operations. Role checks happen in the
// route gate; this service layers the independent ownership checks on top.
type CourseService struct {
	courses      repository.CourseRepository
	contents     repository.ContentRepository
	enrollments  repository.EnrollmentRepository
	universities repository.UniversityRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
}

// CourseDependencies encapsulates repo requirements for the course service.
type CourseDependencies struct {
	CourseRepo     repository.CourseRepository
	ContentRepo    repository.ContentRepository
	EnrollmentRepo repository.EnrollmentRepository
	UniversityRepo repository.UniversityRepository
	UserRepo       repository.UserRepository
	Dispatcher     events.Dispatcher
}

// NewCourseService builds the service.
func NewCourseService(deps CourseDependencies) *CourseService {
	return &CourseService{
		courses:      deps.CourseRepo,
		contents:     deps.ContentRepo,
		enrollments:  deps.EnrollmentRepo,
		universities: deps.UniversityRepo,
		users:        deps.UserRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// Create adds a course. Instructors who create a course are assigned to
// teach it immediately so later ownership checks pass.
func (s *CourseService) Create(ctx context.Context, actor *auth.Claims, input CourseInput) (*domain.Course, error) {
	programType, details := validateCourseInput(input, true)
	if details != nil {
		return nil, apperrors.NewValidationError("invalid course payload", details)
	}

	if _, err := s.universities.GetByID(ctx, input.UniversityID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("university", nil)
		}
		return nil, err
	}

	course := &domain.Course{
		Name:          input.Name,
		Description:   input.Description,
		ProgramType:   programType,
		DurationWeeks: input.DurationWeeks,
		UniversityID:  input.UniversityID,
		TextbookID:    input.TextbookID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleInstructor {
		if err := s.courses.AssignInstructor(ctx, course.ID, actor.UserID); err != nil {
			return nil, err
		}
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCourseCreated,
			ActorID:   actor.UserID,
			ActorRole: actor.Role,
			Timestamp: time.Now(),
			Payload: events.CourseCreatedPayload{
				CourseID:     course.ID,
				UniversityID: course.UniversityID,
				Name:         course.Name,
			},
		})
	}

	return course, nil
}

// Update modifies a course after the teaches-this-course ownership check.
func (s *CourseService) Update(ctx context.Context, actor *auth.Claims, courseID string, input CourseInput) (*domain.Course, error) {
	programType, details := validateCourseInput(input, false)
	if details != nil {
		return nil, apperrors.NewValidationError("invalid course payload", details)
	}

	course, err := s.getCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.requireTeaches(ctx, actor, courseID); err != nil {
		return nil, err
	}

	course.Name = input.Name
	course.Description = input.Description
	course.ProgramType = programType
	course.DurationWeeks = input.DurationWeeks
	course.TextbookID = input.TextbookID

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course after the ownership check.
func (s *CourseService) Delete(ctx context.Context, actor *auth.Claims, courseID string) error {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.requireTeaches(ctx, actor, courseID); err != nil {
		return err
	}
	return s.courses.Delete(ctx, courseID)
}

// Get returns a single course; the catalog is public.
func (s *CourseService) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.getCourse(ctx, courseID)
}

// List returns the filtered catalog.
func (s *CourseService) List(ctx context.Context, filter repository.CourseFilter) ([]domain.Course, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.courses.List(ctx, filter)
}

// AssignInstructor attaches an instructor to a course. Admin-only at the
// route; the target account must actually hold the instructor role.
func (s *CourseService) AssignInstructor(ctx context.Context, courseID, instructorID string) error {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, instructorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("instructor", nil)
		}
		return err
	}
	if target.Role != domain.RoleInstructor {
		return apperrors.NewValidationError("user is not an instructor", map[string]any{"instructor_id": instructorID})
	}

	return s.courses.AssignInstructor(ctx, courseID, instructorID)
}

// RemoveInstructor detaches an instructor from a course.
func (s *CourseService) RemoveInstructor(ctx context.Context, courseID, instructorID string) error {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.courses.RemoveInstructor(ctx, courseID, instructorID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("assignment", nil)
		}
		return err
	}
	return nil
}

// AddContent creates a lesson item; requires teaching ownership.
func (s *CourseService) AddContent(ctx context.Context, actor *auth.Claims, courseID, contentType, body string) (*domain.Content, error) {
	parsedType, ok := domain.ParseContentType(contentType)
	if !ok {
		return nil, apperrors.NewValidationError("invalid content type", map[string]any{"type": contentType})
	}
	if body == "" {
		return nil, apperrors.NewValidationError("content body required", nil)
	}

	if _, err := s.getCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if err := s.requireTeaches(ctx, actor, courseID); err != nil {
		return nil, err
	}

	content := &domain.Content{CourseID: courseID, Type: parsedType, Body: body}
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// DeleteContent removes a lesson item; requires teaching ownership.
func (s *CourseService) DeleteContent(ctx context.Context, actor *auth.Claims, courseID, contentID string) error {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.requireTeaches(ctx, actor, courseID); err != nil {
		return err
	}
	if err := s.contents.Delete(ctx, contentID, courseID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("content", nil)
		}
		return err
	}
	return nil
}

// ListContents returns a course's lesson items. Students must be enrolled;
// instructors must teach the course; admins see everything.
func (s *CourseService) ListContents(ctx context.Context, actor *auth.Claims, courseID string) ([]domain.Content, error) {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleStudent:
		enrolled, err := s.enrollments.Exists(ctx, courseID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			return nil, apperrors.NewForbidden("not enrolled in this course")
		}
	case domain.RoleInstructor:
		if err := s.requireTeaches(ctx, actor, courseID); err != nil {
			return nil, err
		}
	case domain.RoleAdmin, domain.RoleDataAnalyst:
		// full read access
	default:
		return nil, apperrors.NewIntegrityError("unrecognized role in session claims", nil)
	}

	return s.contents.ListByCourse(ctx, courseID)
}

// requireTeaches is the instructor ownership check. It is independent of
// the role gate: passing one never skips the other. Admins bypass ownership
// but still had to clear their own role gate to get here.
func (s *CourseService) requireTeaches(ctx context.Context, actor *auth.Claims, courseID string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	teaches, err := s.courses.IsInstructor(ctx, courseID, actor.UserID)
	if err != nil {
		return err
	}
	if !teaches {
		return apperrors.NewForbidden("not assigned to this course")
	}
	return nil
}

func (s *CourseService) getCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, err
	}
	return course, nil
}

func validateCourseInput(input CourseInput, requireUniversity bool) (domain.ProgramType, map[string]any) {
	details := map[string]any{}

	if input.Name == "" {
		details["name"] = "required"
	}
	programType, ok := domain.ParseProgramType(input.ProgramType)
	if !ok {
		details["program_type"] = "invalid program type"
	}
	if input.DurationWeeks < 0 {
		details["duration_weeks"] = "must not be negative"
	}
	if requireUniversity && input.UniversityID == "" {
		details["university_id"] = "required"
	}

	if len(details) > 0 {
		return "", details
	}
	return programType, nil
}
