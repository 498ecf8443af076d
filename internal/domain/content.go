package domain

import "time"

// ContentType classifies a lesson item inside a course.
type ContentType string

const (
	ContentTypeLecture    ContentType = "LECTURE"
	ContentTypeAssignment ContentType = "ASSIGNMENT"
	ContentTypeQuiz       ContentType = "QUIZ"
	ContentTypeReading    ContentType = "READING"
)

// ParseContentType converts a raw string into a ContentType.
func ParseContentType(raw string) (ContentType, bool) {
	switch ContentType(raw) {
	case ContentTypeLecture, ContentTypeAssignment, ContentTypeQuiz, ContentTypeReading:
		return ContentType(raw), true
	default:
		return "", false
	}
}

// Content is a single lesson item belonging to a course.
type Content struct {
	ID        string
	CourseID  string
	Type      ContentType
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
