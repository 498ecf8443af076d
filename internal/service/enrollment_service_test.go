package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/events"
)

func TestEnrollIsKeyedOnActor(t *testing.T) {
	var enrolledStudent string
	courses := &mockCourseRepo{
		getByID: func(_ context.Context, id string) (*domain.Course, error) {
			return existingCourse(), nil
		},
	}
	enrollments := &mockEnrollmentRepo{
		enroll: func(_ context.Context, courseID, studentID string) (*domain.Enrollment, error) {
			enrolledStudent = studentID
			return &domain.Enrollment{ID: "enr-1", CourseID: courseID, StudentID: studentID, EnrolledAt: time.Now()}, nil
		},
	}
	dispatcher := &recordingDispatcher{}
	svc := NewEnrollmentService(enrollments, courses, dispatcher)

	enrollment, err := svc.Enroll(context.Background(), studentClaims("stu-1"), "course-1")
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if enrolledStudent != "stu-1" || enrollment.StudentID != "stu-1" {
		t.Errorf("enrollment keyed on %q, want the acting student", enrolledStudent)
	}
	if len(dispatcher.published) != 1 || dispatcher.published[0].Type != events.EventEnrollmentCreated {
		t.Errorf("expected one enrollment_created event, got %+v", dispatcher.published)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc := NewEnrollmentService(&mockEnrollmentRepo{}, &mockCourseRepo{}, nil)

	_, err := svc.Enroll(context.Background(), studentClaims("stu-1"), "missing")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("error code %s, want NOT_FOUND", code)
	}
}

func TestDropOnlyRemovesOwnEnrollment(t *testing.T) {
	var droppedStudent string
	enrollments := &mockEnrollmentRepo{
		drop: func(_ context.Context, courseID, studentID string) error {
			droppedStudent = studentID
			return nil
		},
	}
	svc := NewEnrollmentService(enrollments, &mockCourseRepo{}, nil)

	if err := svc.Drop(context.Background(), studentClaims("stu-1"), "course-1"); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if droppedStudent != "stu-1" {
		t.Errorf("drop keyed on %q, want the acting student", droppedStudent)
	}
}

func TestDropMissingEnrollment(t *testing.T) {
	enrollments := &mockEnrollmentRepo{
		drop: func(_ context.Context, _, _ string) error { return pgx.ErrNoRows },
	}
	svc := NewEnrollmentService(enrollments, &mockCourseRepo{}, nil)

	err := svc.Drop(context.Background(), studentClaims("stu-1"), "course-1")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("error code %s, want NOT_FOUND", code)
	}
}

func TestRosterAccess(t *testing.T) {
	roster := []domain.RosterEntry{{StudentID: "stu-1", StudentName: "Dana"}}

	cases := []struct {
		name     string
		teaches  bool
		admin    bool
		wantCode string
	}{
		{"assigned instructor sees roster", true, false, ""},
		{"unassigned instructor refused", false, false, "FORBIDDEN"},
		{"admin sees any roster", false, true, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			courses := &mockCourseRepo{
				getByID: func(_ context.Context, _ string) (*domain.Course, error) {
					return existingCourse(), nil
				},
				isInstructor: func(_ context.Context, _, _ string) (bool, error) {
					return tt.teaches, nil
				},
			}
			enrollments := &mockEnrollmentRepo{
				roster: func(_ context.Context, _ string) ([]domain.RosterEntry, error) {
					return roster, nil
				},
			}
			svc := NewEnrollmentService(enrollments, courses, nil)

			actor := instructorClaims("inst-1")
			if tt.admin {
				actor = adminClaims()
			}
			result, err := svc.Roster(context.Background(), actor, "course-1")
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Roster: %v", err)
				}
				if len(result) != 1 {
					t.Errorf("got %d roster entries, want 1", len(result))
				}
				return
			}
			if code := domainCode(t, err); code != tt.wantCode {
				t.Errorf("error code %s, want %s", code, tt.wantCode)
			}
		})
	}
}
