package domain

import "time"

// Enrollment links a student to a course.
type Enrollment struct {
	ID         string
	CourseID   string
	StudentID  string
	EnrolledAt time.Time
}

// RosterEntry is the instructor-facing view of an enrolled student.
type RosterEntry struct {
	EnrollmentID string
	StudentID    string
	StudentName  string
	StudentEmail string
	EnrolledAt   time.Time
}
