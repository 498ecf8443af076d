package dto

import "github.com/spec-kit/lms-service/internal/domain"

// UniversityRequest payload for university create/update.
type UniversityRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// UniversityResponse is the public view of a university.
type UniversityResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// UniversitySummaryResponse adds the catalog course count.
type UniversitySummaryResponse struct {
	UniversityResponse
	CourseCount int `json:"course_count"`
}

// NewUniversityResponse maps a domain university.
func NewUniversityResponse(university *domain.University) UniversityResponse {
	return UniversityResponse{
		ID:      university.ID,
		Name:    university.Name,
		Country: university.Country,
	}
}

// NewUniversitySummaryResponses maps catalog summaries.
func NewUniversitySummaryResponses(summaries []domain.UniversitySummary) []UniversitySummaryResponse {
	responses := make([]UniversitySummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, UniversitySummaryResponse{
			UniversityResponse: UniversityResponse{
				ID:      summary.ID,
				Name:    summary.Name,
				Country: summary.Country,
			},
			CourseCount: summary.CourseCount,
		})
	}
	return responses
}
