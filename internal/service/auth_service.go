package service

import (
	"context"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/config"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/events"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput carries a registration request into the service.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	// Student profile fields.
	Age        *int
	Country    *string
	SkillLevel *string
	Category   *string

	// Instructor profile fields.
	Experience *int
}

// AuthService coordinates registration, login and credential flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service. The token manager error propagates so
// main can fail fast on a missing secret.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	tokenMgr, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		tokenMgr:   tokenMgr,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}, nil
}

// Register creates an account plus its role profile and signs in the new
// user. Validation failures are reported before any write is attempted; the
// user row and profile row commit or roll back together.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.Profile, string, time.Time, error) {
	role, details := s.validateRegistration(input)
	if details != nil {
		return nil, nil, "", time.Time{}, apperrors.NewValidationError("invalid registration payload", details)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, nil, "", time.Time{}, apperrors.NewConflict("user with this email already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	}

	profile := &domain.Profile{}
	var student *domain.StudentProfile
	var instructor *domain.InstructorProfile

	switch role {
	case domain.RoleStudent:
		student = &domain.StudentProfile{Age: input.Age, Country: input.Country, Category: input.Category}
		if input.SkillLevel != nil {
			level, _ := domain.ParseSkillLevel(*input.SkillLevel)
			student.SkillLevel = &level
		}
		profile.Student = student
	case domain.RoleInstructor:
		instructor = &domain.InstructorProfile{}
		if input.Experience != nil {
			instructor.Experience = *input.Experience
		}
		profile.Instructor = instructor
	case domain.RoleAdmin, domain.RoleDataAnalyst:
		// no profile rows
	default:
		return nil, nil, "", time.Time{}, apperrors.NewIntegrityError("unreachable role after validation", nil)
	}

	if err := s.users.CreateWithProfile(ctx, user, student, instructor); err != nil {
		return nil, nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, user.Role, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	return user, profile, token, exp, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same outcome; the dummy-digest comparison keeps the
// work done for both cases the same shape, so response timing does not
// reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Profile, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && err != pgx.ErrNoRows {
		return nil, nil, "", time.Time{}, err
	}

	digest := auth.DummyDigest
	if user != nil {
		digest = user.PasswordHash
	}
	passwordOK := auth.CheckPassword(password, digest)

	if user == nil || !passwordOK {
		return nil, nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	profile, err := s.loadProfile(ctx, user)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}
	return user, profile, token, exp, nil
}

// CurrentUser resolves verified claims to the fresh account record and its
// role profile. The store is the source of truth here; only the token's
// subject id is trusted.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, *domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, nil, err
	}

	profile, err := s.loadProfile(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// ChangePassword verifies the current password against the stored hash
// before writing a new one. The unknown-email and wrong-password outcomes
// are identical, with the same dummy-digest equalization as login.
func (s *AuthService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if !validPassword(newPassword) {
		return apperrors.NewValidationError("invalid new password", map[string]any{
			"newPassword": "must be at least 8 characters and include uppercase, lowercase, and a number",
		})
	}
	if oldPassword == newPassword {
		return apperrors.NewValidationError("invalid new password", map[string]any{
			"newPassword": "must be different from old password",
		})
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && err != pgx.ErrNoRows {
		return err
	}

	digest := auth.DummyDigest
	if user != nil {
		digest = user.PasswordHash
	}
	passwordOK := auth.CheckPassword(oldPassword, digest)

	if user == nil || !passwordOK {
		return apperrors.NewUnauthorized("invalid email or old password")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.publish(ctx, events.EventPasswordChanged, user.ID, user.Role, events.PasswordChangedPayload{UserID: user.ID})
	return nil
}

// RequestPasswordReset persists a single-use reset token and hands it to the
// notification path. An unknown email succeeds without storing anything, so
// the response does not reveal whether the account exists; login and
// change-password equalize the same way.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		return err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return err
	}

	s.publish(ctx, events.EventPasswordResetRequested, user.ID, user.Role, events.PasswordResetRequestedPayload{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	})
	return nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	if !validPassword(newPassword) {
		return apperrors.NewValidationError("invalid new password", map[string]any{
			"newPassword": "must be at least 8 characters and include uppercase, lowercase, and a number",
		})
	}

	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewValidationError("reset token expired or used", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, token.UserID, hash); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// Logout is a no-op for the stateless token approach; only the client-side
// cookie is cleared by the handler.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// loadProfile branches on the account role. The switch is exhaustive over
// the enumeration; anything else is corrupted state, surfaced as an
// integrity error rather than silently mapped to no access.
func (s *AuthService) loadProfile(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	profile := &domain.Profile{}

	switch user.Role {
	case domain.RoleStudent:
		student, err := s.users.GetStudentProfile(ctx, user.ID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, err
		}
		profile.Student = student
	case domain.RoleInstructor:
		instructor, err := s.users.GetInstructorProfile(ctx, user.ID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, err
		}
		profile.Instructor = instructor
	case domain.RoleAdmin, domain.RoleDataAnalyst:
		// no role profile
	default:
		return nil, apperrors.NewIntegrityError("unrecognized role in user store", nil)
	}

	return profile, nil
}

func (s *AuthService) validateRegistration(input RegisterInput) (domain.Role, map[string]any) {
	details := map[string]any{}

	if input.Name == "" {
		details["name"] = "required"
	}
	if input.Email == "" {
		details["email"] = "required"
	} else if !emailPattern.MatchString(input.Email) {
		details["email"] = "invalid email format"
	}
	if input.Password == "" {
		details["password"] = "required"
	} else if !validPassword(input.Password) {
		details["password"] = "must be at least 8 characters and include uppercase, lowercase, and a number"
	}

	role, ok := domain.ParseRole(input.Role)
	if !ok {
		details["role"] = "invalid role"
	}

	if role == domain.RoleStudent && input.SkillLevel != nil {
		if _, ok := domain.ParseSkillLevel(*input.SkillLevel); !ok {
			details["skill_level"] = "invalid skill level"
		}
	}
	if role == domain.RoleStudent && input.Age != nil && *input.Age < 0 {
		details["age"] = "must not be negative"
	}
	if role == domain.RoleInstructor && input.Experience != nil && *input.Experience < 0 {
		details["experience"] = "must not be negative"
	}

	if len(details) > 0 {
		return "", details
	}
	return role, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, actorID string, actorRole domain.Role, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		ActorRole: actorRole,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
