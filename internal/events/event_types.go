package events

import (
	"time"

	"github.com/spec-kit/lms-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventPasswordChanged        EventType = "password_changed"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventCourseCreated          EventType = "course_created"
	EventEnrollmentCreated      EventType = "enrollment_created"
	EventEnrollmentDropped      EventType = "enrollment_dropped"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	ActorRole domain.Role `json:"actor_role"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// PasswordChangedPayload payload.
type PasswordChangedPayload struct {
	UserID string `json:"user_id"`
}

// PasswordResetRequestedPayload payload. The token rides on the event for
// out-of-band delivery only and must not be logged or echoed in a response.
type PasswordResetRequestedPayload struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CourseCreatedPayload payload.
type CourseCreatedPayload struct {
	CourseID     string `json:"course_id"`
	UniversityID string `json:"university_id"`
	Name         string `json:"name"`
}

// EnrollmentPayload payload for enrollment created/dropped.
type EnrollmentPayload struct {
	CourseID  string `json:"course_id"`
	StudentID string `json:"student_id"`
}
