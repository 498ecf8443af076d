package dto

import (
	"time"

	"github.com/spec-kit/lms-service/internal/domain"
)

// RegisterRequest payload for new accounts. Profile fields apply only to
// the matching role and are ignored otherwise.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	Age        *int    `json:"age,omitempty"`
	Country    *string `json:"country,omitempty"`
	SkillLevel *string `json:"skill_level,omitempty"`
	Category   *string `json:"category,omitempty"`
	Experience *int    `json:"experience,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for password changes.
type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// PasswordResetRequest payload.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest payload.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StudentProfileResponse mirrors the student profile row.
type StudentProfileResponse struct {
	Age        *int    `json:"age"`
	Country    *string `json:"country"`
	SkillLevel *string `json:"skill_level"`
	Category   *string `json:"category"`
}

// InstructorProfileResponse mirrors the instructor profile row.
type InstructorProfileResponse struct {
	Experience int     `json:"experience"`
	Rating     float64 `json:"rating"`
}

// UserResponse is the public view of an account. PasswordHash never leaves
// the service.
type UserResponse struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    domain.Role `json:"role"`
	Profile any         `json:"profile"`
}

// NewUserResponse maps a domain user and optional profile.
func NewUserResponse(user *domain.User, profile *domain.Profile) UserResponse {
	resp := UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if profile == nil {
		return resp
	}
	if profile.Student != nil {
		var level *string
		if profile.Student.SkillLevel != nil {
			s := string(*profile.Student.SkillLevel)
			level = &s
		}
		resp.Profile = StudentProfileResponse{
			Age:        profile.Student.Age,
			Country:    profile.Student.Country,
			SkillLevel: level,
			Category:   profile.Student.Category,
		}
	}
	if profile.Instructor != nil {
		resp.Profile = InstructorProfileResponse{
			Experience: profile.Instructor.Experience,
			Rating:     profile.Instructor.Rating,
		}
	}
	return resp
}
