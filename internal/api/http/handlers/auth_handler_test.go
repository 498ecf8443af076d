package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/lms-service/internal/api/http/handlers"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/config"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
	"github.com/spec-kit/lms-service/internal/service"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// memoryUserStore is an in-memory UserRepository for handler-level tests.
type memoryUserStore struct {
	nextID int
	byID   map[string]*domain.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{byID: map[string]*domain.User{}}
}

func (s *memoryUserStore) CreateWithProfile(_ context.Context, user *domain.User, _ *domain.StudentProfile, _ *domain.InstructorProfile) error {
	s.nextID++
	user.ID = "user-" + string(rune('0'+s.nextID))
	copied := *user
	s.byID[user.ID] = &copied
	return nil
}

func (s *memoryUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *memoryUserStore) List(context.Context, int, int) ([]domain.User, error) { return nil, nil }

func (s *memoryUserStore) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

func (s *memoryUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	user, ok := s.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	return nil
}

func (s *memoryUserStore) UpdateRole(_ context.Context, id string, role domain.Role) error {
	user, ok := s.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func (s *memoryUserStore) GetStudentProfile(context.Context, string) (*domain.StudentProfile, error) {
	return nil, pgx.ErrNoRows
}

func (s *memoryUserStore) GetInstructorProfile(context.Context, string) (*domain.InstructorProfile, error) {
	return nil, pgx.ErrNoRows
}

type noopResetStore struct{}

func (noopResetStore) Create(context.Context, *repository.PasswordResetToken) error { return nil }
func (noopResetStore) GetByToken(context.Context, string) (*repository.PasswordResetToken, error) {
	return nil, pgx.ErrNoRows
}
func (noopResetStore) MarkUsed(context.Context, string) error { return nil }

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}}
	authService, err := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:          newMemoryUserStore(),
		PasswordResetRepo: noopResetStore{},
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	authenticator := auth.NewAuthenticator(authService.TokenManager())
	handler := handlers.NewAuthHandler(authService, false)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
			})
		},
	})
	app.Post("/api/auth/register", handler.Register)
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/logout", handler.Logout)
	app.Get("/api/auth/me", authenticator.RequireAuth(), handler.Me)
	app.Post("/api/auth/password/reset/request", handler.RequestPasswordReset)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

func TestRegisterThenWhoami(t *testing.T) {
	app := newAuthTestApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Dana","email":"dana@example.com","password":"Sup3rSecret","role":"ADMIN"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d, want 201", resp.StatusCode)
	}
	token := sessionCookie(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Cookie", "token="+token)
	meResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if meResp.StatusCode != http.StatusOK {
		t.Fatalf("me status %d, want 200", meResp.StatusCode)
	}

	var payload struct {
		Data struct {
			User struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(meResp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if payload.Data.User.Email != "dana@example.com" || payload.Data.User.Role != "ADMIN" {
		t.Errorf("unexpected identity: %+v", payload.Data.User)
	}
}

func TestWhoamiWithoutSession(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", resp.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	app := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register",
		`{"name":"Dana","email":"dana@example.com","password":"Sup3rSecret","role":"ADMIN"}`)

	resp := postJSON(t, app, "/api/auth/login",
		`{"email":"dana@example.com","password":"Sup3rSecret"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d, want 200", resp.StatusCode)
	}
	sessionCookie(t, resp)

	resp = postJSON(t, app, "/api/auth/login",
		`{"email":"dana@example.com","password":"WrongPass1"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password status %d, want 401", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/auth/login",
		`{"email":"ghost@example.com","password":"Sup3rSecret"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unknown email status %d, want 401", resp.StatusCode)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newAuthTestApp(t)

	resp := postJSON(t, app, "/api/auth/logout", `{}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status %d, want 200", resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			t.Errorf("logout left a session value in the cookie: %q", cookie.Value)
		}
	}
}

func TestPasswordResetRequestHidesAccountExistence(t *testing.T) {
	app := newAuthTestApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Dana","email":"dana@example.com","password":"Sup3rSecret","role":"STUDENT"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d, want 201", resp.StatusCode)
	}

	readBody := func(email string) (int, string) {
		t.Helper()
		resp := postJSON(t, app, "/api/auth/password/reset/request", `{"email":"`+email+`"}`)
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return resp.StatusCode, string(body)
	}

	knownStatus, knownBody := readBody("dana@example.com")
	unknownStatus, unknownBody := readBody("ghost@example.com")

	if knownStatus != http.StatusOK || unknownStatus != http.StatusOK {
		t.Fatalf("statuses %d/%d, want 200 for both", knownStatus, unknownStatus)
	}
	if knownBody != unknownBody {
		t.Errorf("responses differ by account existence:\nknown:   %s\nunknown: %s", knownBody, unknownBody)
	}
	if strings.Contains(knownBody, "reset_token") {
		t.Errorf("reset token leaked into the response: %s", knownBody)
	}
}
