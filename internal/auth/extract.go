package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token for browser
// navigations. Set httpOnly so client script cannot read it.
const SessionCookieName = "token"

// ExtractToken pulls a raw session token out of the transport headers.
// A well-formed Authorization bearer header wins over a coexisting cookie;
// the cookie fallback exists for browser page loads, the header for API
// callers. Returns "" when neither source carries a token.
func ExtractToken(authorization, cookieHeader string) string {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
		return parts[1]
	}
	return tokenFromCookieHeader(cookieHeader)
}

// TokenFromRequest extracts the raw token from a Fiber request context.
func TokenFromRequest(c *fiber.Ctx) string {
	return ExtractToken(c.Get(fiber.HeaderAuthorization), c.Get(fiber.HeaderCookie))
}

// tokenFromCookieHeader scans the raw Cookie header for the token key.
// First match wins, value stops at the next ';' or end of string. Values
// containing ';' are not supported.
func tokenFromCookieHeader(header string) string {
	rest := header
	for rest != "" {
		pair := rest
		if idx := strings.Index(rest, ";"); idx >= 0 {
			pair, rest = rest[:idx], rest[idx+1:]
		} else {
			rest = ""
		}
		pair = strings.TrimSpace(pair)
		if value, found := strings.CutPrefix(pair, SessionCookieName+"="); found && value != "" {
			return value
		}
	}
	return ""
}
