package service

import (
	"context"
	"testing"

	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
)

func TestDashboardBranchesByRole(t *testing.T) {
	totals := &repository.PlatformTotals{Users: 10, Courses: 3}
	top := []repository.CourseEnrollmentCount{{CourseID: "course-1", CourseName: "Databases", Count: 7}}

	stats := &mockStatsRepo{
		platformTotals: func(_ context.Context) (*repository.PlatformTotals, error) {
			return totals, nil
		},
		topCoursesByEnrollment: func(_ context.Context, limit int) ([]repository.CourseEnrollmentCount, error) {
			return top, nil
		},
	}
	enrollments := &mockEnrollmentRepo{
		listByStudent: func(_ context.Context, studentID string) ([]domain.Enrollment, error) {
			return []domain.Enrollment{{ID: "enr-1", CourseID: "course-1", StudentID: studentID}}, nil
		},
	}
	courses := &mockCourseRepo{
		listByInstructor: func(_ context.Context, instructorID string) ([]domain.Course, error) {
			return []domain.Course{*existingCourse()}, nil
		},
	}
	svc := NewDashboardService(stats, enrollments, courses, nil)

	t.Run("student sees enrollments", func(t *testing.T) {
		dashboard, err := svc.For(context.Background(), studentClaims("stu-1"))
		if err != nil {
			t.Fatalf("For: %v", err)
		}
		if len(dashboard.Enrollments) != 1 || dashboard.Teaching != nil || dashboard.Totals != nil {
			t.Errorf("unexpected student dashboard: %+v", dashboard)
		}
	})

	t.Run("instructor sees teaching list", func(t *testing.T) {
		dashboard, err := svc.For(context.Background(), instructorClaims("inst-1"))
		if err != nil {
			t.Fatalf("For: %v", err)
		}
		if len(dashboard.Teaching) != 1 || dashboard.Enrollments != nil {
			t.Errorf("unexpected instructor dashboard: %+v", dashboard)
		}
	})

	t.Run("admin sees totals", func(t *testing.T) {
		dashboard, err := svc.For(context.Background(), adminClaims())
		if err != nil {
			t.Fatalf("For: %v", err)
		}
		if dashboard.Totals == nil || dashboard.Totals.Users != 10 {
			t.Errorf("unexpected admin dashboard: %+v", dashboard)
		}
		if dashboard.TopCourses != nil {
			t.Error("admin dashboard carries analyst-only data")
		}
	})

	t.Run("analyst sees totals and top courses", func(t *testing.T) {
		dashboard, err := svc.For(context.Background(), &auth.Claims{UserID: "an-1", Role: domain.RoleDataAnalyst})
		if err != nil {
			t.Fatalf("For: %v", err)
		}
		if dashboard.Totals == nil || len(dashboard.TopCourses) != 1 {
			t.Errorf("unexpected analyst dashboard: %+v", dashboard)
		}
	})

	t.Run("unknown role is a server fault", func(t *testing.T) {
		_, err := svc.For(context.Background(), &auth.Claims{UserID: "g-1", Role: domain.Role("GHOST")})
		if code := domainCode(t, err); code != "INTEGRITY_ERROR" {
			t.Errorf("error code %s, want INTEGRITY_ERROR", code)
		}
	})
}
