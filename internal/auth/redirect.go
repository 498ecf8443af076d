package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RedirectGuard is a shallow pre-routing check for browser navigations. It
// looks only at token presence, never validity: a forged or expired token
// passes the guard (avoiding a redirect loop) and is rejected later by the
// gate middleware, which stays the authoritative enforcement point.
type RedirectGuard struct {
	public  map[string]struct{}
	login   string
	signup  string
	landing string
}

// NewRedirectGuard builds the guard with the fixed public-route allow-list.
func NewRedirectGuard() *RedirectGuard {
	return &RedirectGuard{
		public: map[string]struct{}{
			"/":         {},
			"/login":    {},
			"/register": {},
		},
		login:   "/login",
		signup:  "/register",
		landing: "/dashboard",
	}
}

// Handle redirects authenticated browsers away from the auth pages and
// anonymous browsers away from private pages, preserving the requested path
// as a return-to parameter. API routes and asset requests pass through.
func (g *RedirectGuard) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/api") || strings.Contains(path, ".") {
		return c.Next()
	}

	hasToken := TokenFromRequest(c) != ""

	if hasToken && (path == g.login || path == g.signup) {
		return c.Redirect(g.landing, fiber.StatusFound)
	}

	if _, isPublic := g.public[path]; !hasToken && !isPublic {
		return c.Redirect(g.login+"?next="+url.QueryEscape(path), fiber.StatusFound)
	}

	return c.Next()
}
