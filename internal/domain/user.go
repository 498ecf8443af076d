package domain

import "time"

// User is the domain model for every account on the platform regardless of
// role. Role-specific attributes live in the profile types below.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SkillLevel grades a student's self-reported proficiency.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "BEGINNER"
	SkillLevelIntermediate SkillLevel = "INTERMEDIATE"
	SkillLevelAdvanced     SkillLevel = "ADVANCED"
)

// ParseSkillLevel converts a raw string into a SkillLevel.
func ParseSkillLevel(raw string) (SkillLevel, bool) {
	switch SkillLevel(raw) {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced:
		return SkillLevel(raw), true
	default:
		return "", false
	}
}

// StudentProfile holds the student-only attributes of a user.
type StudentProfile struct {
	UserID     string
	Age        *int
	Country    *string
	SkillLevel *SkillLevel
	Category   *string
}

// InstructorProfile holds the instructor-only attributes of a user.
type InstructorProfile struct {
	UserID     string
	Experience int
	Rating     float64
}

// Profile is the role-dependent view returned by me/whoami style lookups.
// At most one of the fields is set; both are nil for ADMIN and DATA_ANALYST.
type Profile struct {
	Student    *StudentProfile
	Instructor *InstructorProfile
}
