package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func setCookieHeader(t *testing.T, handler fiber.Handler) string {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	header := resp.Header.Get("Set-Cookie")
	if header == "" {
		t.Fatal("no Set-Cookie header written")
	}
	return header
}

func TestSetSessionCookieAttributes(t *testing.T) {
	header := setCookieHeader(t, func(c *fiber.Ctx) error {
		SetSessionCookie(c, "abc123", time.Hour, false)
		return c.SendStatus(http.StatusOK)
	})

	lower := strings.ToLower(header)
	if !strings.HasPrefix(header, "token=abc123") {
		t.Errorf("cookie does not carry token value: %q", header)
	}
	for _, attr := range []string{"path=/", "httponly", "samesite=lax", "max-age=3600"} {
		if !strings.Contains(lower, attr) {
			t.Errorf("cookie missing %s attribute: %q", attr, header)
		}
	}
	if strings.Contains(lower, "secure") {
		t.Errorf("secure attribute set outside production: %q", header)
	}
}

func TestSetSessionCookieSecureInProduction(t *testing.T) {
	header := setCookieHeader(t, func(c *fiber.Ctx) error {
		SetSessionCookie(c, "abc123", time.Hour, true)
		return c.SendStatus(http.StatusOK)
	})

	if !strings.Contains(strings.ToLower(header), "secure") {
		t.Errorf("secure attribute missing: %q", header)
	}
}

func TestClearSessionCookie(t *testing.T) {
	header := setCookieHeader(t, func(c *fiber.Ctx) error {
		ClearSessionCookie(c, false)
		return c.SendStatus(http.StatusOK)
	})

	if !strings.HasPrefix(header, "token=") || strings.HasPrefix(header, "token=abc") {
		t.Errorf("cleared cookie still carries a value: %q", header)
	}
	value := strings.TrimPrefix(strings.SplitN(header, ";", 2)[0], "token=")
	if value != "" {
		t.Errorf("cleared cookie value = %q, want empty", value)
	}
}
