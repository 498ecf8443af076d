package dto

import (
	"time"

	"github.com/spec-kit/lms-service/internal/domain"
)

// CourseRequest payload for course create/update.
type CourseRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ProgramType   string  `json:"program_type"`
	DurationWeeks int     `json:"duration_weeks"`
	UniversityID  string  `json:"university_id"`
	TextbookID    *string `json:"textbook_id,omitempty"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ProgramType   string    `json:"program_type"`
	DurationWeeks int       `json:"duration_weeks"`
	UniversityID  string    `json:"university_id"`
	TextbookID    *string   `json:"textbook_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewCourseResponse maps a domain course.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:            course.ID,
		Name:          course.Name,
		Description:   course.Description,
		ProgramType:   string(course.ProgramType),
		DurationWeeks: course.DurationWeeks,
		UniversityID:  course.UniversityID,
		TextbookID:    course.TextbookID,
		CreatedAt:     course.CreatedAt,
	}
}

// NewCourseResponses maps a slice of domain courses.
func NewCourseResponses(courses []domain.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, NewCourseResponse(&courses[i]))
	}
	return responses
}

// ContentRequest payload for lesson content.
type ContentRequest struct {
	Type string `json:"type"`
	Body string `json:"body"`
}

// ContentResponse is the public view of a lesson item.
type ContentResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Type      string    `json:"type"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContentResponse maps a domain content item.
func NewContentResponse(content *domain.Content) ContentResponse {
	return ContentResponse{
		ID:        content.ID,
		CourseID:  content.CourseID,
		Type:      string(content.Type),
		Body:      content.Body,
		CreatedAt: content.CreatedAt,
	}
}

// AssignInstructorRequest payload for instructor assignment.
type AssignInstructorRequest struct {
	InstructorID string `json:"instructor_id"`
}

// TextbookResponse is the public view of a textbook.
type TextbookResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// NewTextbookResponses maps a slice of domain textbooks.
func NewTextbookResponses(textbooks []domain.Textbook) []TextbookResponse {
	responses := make([]TextbookResponse, 0, len(textbooks))
	for _, textbook := range textbooks {
		responses = append(responses, TextbookResponse{
			ID:     textbook.ID,
			Title:  textbook.Title,
			Author: textbook.Author,
		})
	}
	return responses
}

// TopicResponse is the public view of a topic.
type TopicResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewTopicResponses maps a slice of domain topics.
func NewTopicResponses(topics []domain.Topic) []TopicResponse {
	responses := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		responses = append(responses, TopicResponse{ID: topic.ID, Name: topic.Name})
	}
	return responses
}
