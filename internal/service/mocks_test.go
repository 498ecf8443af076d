package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
)

// Function-field mocks shared by the service tests. Unset fields fail the
// call so tests notice unexpected repository traffic.

type mockCourseRepo struct {
	create           func(ctx context.Context, course *domain.Course) error
	update           func(ctx context.Context, course *domain.Course) error
	deleteFn         func(ctx context.Context, id string) error
	getByID          func(ctx context.Context, id string) (*domain.Course, error)
	list             func(ctx context.Context, filter repository.CourseFilter) ([]domain.Course, error)
	assignInstructor func(ctx context.Context, courseID, instructorID string) error
	removeInstructor func(ctx context.Context, courseID, instructorID string) error
	isInstructor     func(ctx context.Context, courseID, instructorID string) (bool, error)
	listByInstructor func(ctx context.Context, instructorID string) ([]domain.Course, error)
}

func (m *mockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	if m.create == nil {
		return errors.New("unexpected Create call")
	}
	return m.create(ctx, course)
}

func (m *mockCourseRepo) Update(ctx context.Context, course *domain.Course) error {
	if m.update == nil {
		return errors.New("unexpected Update call")
	}
	return m.update(ctx, course)
}

func (m *mockCourseRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id)
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	if m.getByID == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByID(ctx, id)
}

func (m *mockCourseRepo) List(ctx context.Context, filter repository.CourseFilter) ([]domain.Course, error) {
	if m.list == nil {
		return nil, errors.New("unexpected List call")
	}
	return m.list(ctx, filter)
}

func (m *mockCourseRepo) AssignInstructor(ctx context.Context, courseID, instructorID string) error {
	if m.assignInstructor == nil {
		return errors.New("unexpected AssignInstructor call")
	}
	return m.assignInstructor(ctx, courseID, instructorID)
}

func (m *mockCourseRepo) RemoveInstructor(ctx context.Context, courseID, instructorID string) error {
	if m.removeInstructor == nil {
		return errors.New("unexpected RemoveInstructor call")
	}
	return m.removeInstructor(ctx, courseID, instructorID)
}

func (m *mockCourseRepo) IsInstructor(ctx context.Context, courseID, instructorID string) (bool, error) {
	if m.isInstructor == nil {
		return false, errors.New("unexpected IsInstructor call")
	}
	return m.isInstructor(ctx, courseID, instructorID)
}

func (m *mockCourseRepo) ListByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error) {
	if m.listByInstructor == nil {
		return nil, errors.New("unexpected ListByInstructor call")
	}
	return m.listByInstructor(ctx, instructorID)
}

type mockEnrollmentRepo struct {
	enroll        func(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error)
	drop          func(ctx context.Context, courseID, studentID string) error
	exists        func(ctx context.Context, courseID, studentID string) (bool, error)
	listByStudent func(ctx context.Context, studentID string) ([]domain.Enrollment, error)
	roster        func(ctx context.Context, courseID string) ([]domain.RosterEntry, error)
}

func (m *mockEnrollmentRepo) Enroll(ctx context.Context, courseID, studentID string) (*domain.Enrollment, error) {
	if m.enroll == nil {
		return nil, errors.New("unexpected Enroll call")
	}
	return m.enroll(ctx, courseID, studentID)
}

func (m *mockEnrollmentRepo) Drop(ctx context.Context, courseID, studentID string) error {
	if m.drop == nil {
		return errors.New("unexpected Drop call")
	}
	return m.drop(ctx, courseID, studentID)
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, courseID, studentID string) (bool, error) {
	if m.exists == nil {
		return false, errors.New("unexpected Exists call")
	}
	return m.exists(ctx, courseID, studentID)
}

func (m *mockEnrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	if m.listByStudent == nil {
		return nil, errors.New("unexpected ListByStudent call")
	}
	return m.listByStudent(ctx, studentID)
}

func (m *mockEnrollmentRepo) Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error) {
	if m.roster == nil {
		return nil, errors.New("unexpected Roster call")
	}
	return m.roster(ctx, courseID)
}

type mockContentRepo struct {
	create       func(ctx context.Context, content *domain.Content) error
	update       func(ctx context.Context, content *domain.Content) error
	deleteFn     func(ctx context.Context, id, courseID string) error
	getByID      func(ctx context.Context, id string) (*domain.Content, error)
	listByCourse func(ctx context.Context, courseID string) ([]domain.Content, error)
}

func (m *mockContentRepo) Create(ctx context.Context, content *domain.Content) error {
	if m.create == nil {
		return errors.New("unexpected Create call")
	}
	return m.create(ctx, content)
}

func (m *mockContentRepo) Update(ctx context.Context, content *domain.Content) error {
	if m.update == nil {
		return errors.New("unexpected Update call")
	}
	return m.update(ctx, content)
}

func (m *mockContentRepo) Delete(ctx context.Context, id, courseID string) error {
	if m.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id, courseID)
}

func (m *mockContentRepo) GetByID(ctx context.Context, id string) (*domain.Content, error) {
	if m.getByID == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByID(ctx, id)
}

func (m *mockContentRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.Content, error) {
	if m.listByCourse == nil {
		return nil, errors.New("unexpected ListByCourse call")
	}
	return m.listByCourse(ctx, courseID)
}

type mockUniversityRepo struct {
	create               func(ctx context.Context, university *domain.University) error
	update               func(ctx context.Context, university *domain.University) error
	deleteFn             func(ctx context.Context, id string) error
	getByID              func(ctx context.Context, id string) (*domain.University, error)
	listWithCourseCounts func(ctx context.Context) ([]domain.UniversitySummary, error)
}

func (m *mockUniversityRepo) Create(ctx context.Context, university *domain.University) error {
	if m.create == nil {
		return errors.New("unexpected Create call")
	}
	return m.create(ctx, university)
}

func (m *mockUniversityRepo) Update(ctx context.Context, university *domain.University) error {
	if m.update == nil {
		return errors.New("unexpected Update call")
	}
	return m.update(ctx, university)
}

func (m *mockUniversityRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id)
}

func (m *mockUniversityRepo) GetByID(ctx context.Context, id string) (*domain.University, error) {
	if m.getByID == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByID(ctx, id)
}

func (m *mockUniversityRepo) ListWithCourseCounts(ctx context.Context) ([]domain.UniversitySummary, error) {
	if m.listWithCourseCounts == nil {
		return nil, errors.New("unexpected ListWithCourseCounts call")
	}
	return m.listWithCourseCounts(ctx)
}

type mockStatsRepo struct {
	platformTotals         func(ctx context.Context) (*repository.PlatformTotals, error)
	topCoursesByEnrollment func(ctx context.Context, limit int) ([]repository.CourseEnrollmentCount, error)
}

func (m *mockStatsRepo) PlatformTotals(ctx context.Context) (*repository.PlatformTotals, error) {
	if m.platformTotals == nil {
		return nil, errors.New("unexpected PlatformTotals call")
	}
	return m.platformTotals(ctx)
}

func (m *mockStatsRepo) TopCoursesByEnrollment(ctx context.Context, limit int) ([]repository.CourseEnrollmentCount, error) {
	if m.topCoursesByEnrollment == nil {
		return nil, errors.New("unexpected TopCoursesByEnrollment call")
	}
	return m.topCoursesByEnrollment(ctx, limit)
}
