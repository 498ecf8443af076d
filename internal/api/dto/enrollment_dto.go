package dto

import (
	"time"

	"github.com/spec-kit/lms-service/internal/domain"
)

// EnrollmentResponse is the student-facing view of an enrollment.
type EnrollmentResponse struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// NewEnrollmentResponse maps a domain enrollment.
func NewEnrollmentResponse(enrollment *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         enrollment.ID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
	}
}

// RosterEntryResponse is the instructor-facing view of an enrolled student.
type RosterEntryResponse struct {
	EnrollmentID string    `json:"enrollment_id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}

// NewRosterResponses maps roster entries.
func NewRosterResponses(entries []domain.RosterEntry) []RosterEntryResponse {
	responses := make([]RosterEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, RosterEntryResponse{
			EnrollmentID: entry.EnrollmentID,
			StudentID:    entry.StudentID,
			StudentName:  entry.StudentName,
			StudentEmail: entry.StudentEmail,
			EnrolledAt:   entry.EnrolledAt,
		})
	}
	return responses
}

// ChangeRoleRequest payload for admin role changes.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}
