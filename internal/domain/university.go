package domain

import "time"

// University models a partner institution that offers courses.
type University struct {
	ID        string
	Name      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UniversitySummary is the catalog listing shape with aggregate counts.
type UniversitySummary struct {
	ID          string
	Name        string
	Country     string
	CourseCount int
}
