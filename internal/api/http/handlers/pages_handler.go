package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/auth"
)

// PagesHandler serves minimal HTML shells for browser navigation. The
// actual UI is rendered client-side; these pages exist so session-based
// redirects have concrete targets.
type PagesHandler struct {
	appName string
}

// NewPagesHandler constructs handler.
func NewPagesHandler(appName string) *PagesHandler {
	return &PagesHandler{appName: appName}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return h.render(c, "Home", `<p>Welcome. <a href="/login">Log in</a> or <a href="/register">create an account</a>.</p>`)
}

// Login handles GET /login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return h.render(c, "Log in", `<p>POST credentials to /api/auth/login to start a session.</p>`)
}

// Register handles GET /register.
func (h *PagesHandler) Register(c *fiber.Ctx) error {
	return h.render(c, "Register", `<p>POST registration details to /api/auth/register.</p>`)
}

// Dashboard handles GET /dashboard.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	body := `<p>Fetch /api/dashboard for role-specific data.</p>`
	if claims, ok := auth.ClaimsFromContext(c); ok {
		body = fmt.Sprintf(`<p>Signed in as %s (%s).</p>`, claims.Email, claims.Role) + body
	}
	return h.render(c, "Dashboard", body)
}

func (h *PagesHandler) render(c *fiber.Ctx, title, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	page := fmt.Sprintf(
		`<!doctype html><html><head><title>%s | %s</title></head><body><h1>%s</h1>%s</body></html>`,
		title, h.appName, title, body,
	)
	return c.SendString(page)
}
