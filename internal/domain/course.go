package domain

import "time"

// ProgramType categorizes how a course is delivered.
type ProgramType string

const (
	ProgramTypeOnline    ProgramType = "ONLINE"
	ProgramTypeOnCampus  ProgramType = "ON_CAMPUS"
	ProgramTypeHybrid    ProgramType = "HYBRID"
	ProgramTypeSelfPaced ProgramType = "SELF_PACED"
)

// ParseProgramType converts a raw string into a ProgramType.
func ParseProgramType(raw string) (ProgramType, bool) {
	switch ProgramType(raw) {
	case ProgramTypeOnline, ProgramTypeOnCampus, ProgramTypeHybrid, ProgramTypeSelfPaced:
		return ProgramType(raw), true
	default:
		return "", false
	}
}

// Course is the domain model for an offered course.
type Course struct {
	ID           string
	Name         string
	Description  string
	ProgramType  ProgramType
	DurationWeeks int
	UniversityID string
	TextbookID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Textbook models the optional reference book attached to a course.
type Textbook struct {
	ID     string
	Title  string
	Author string
}

// Topic is a subject-area tag in the course catalog.
type Topic struct {
	ID   string
	Name string
}
