package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/domain"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// RequireAuth gates a route on authentication. Anonymous requests are
// rejected with 401 before the handler runs; on success the resolved claims
// ride the request context.
func (a *Authenticator) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := a.Resolve(c)
		if claims == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Attach resolves claims when present but never rejects. Useful on pages
// that render differently for signed-in visitors.
func (a *Authenticator) Attach() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims := a.Resolve(c); claims != nil {
			c.Locals(claimsKey, claims)
		}
		return c.Next()
	}
}

// RequireRole gates a route on authentication plus role membership. The
// role check never substitutes for per-resource ownership checks, which
// services layer on independently. A claim carrying a role outside the
// known enumeration is an integrity error, not a deny: it means the claim
// or the store is in a state that should be surfaced, not hidden.
func (a *Authenticator) RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			if claims = a.Resolve(c); claims == nil {
				return apperrors.NewUnauthorized("authentication required")
			}
			c.Locals(claimsKey, claims)
		}
		if !claims.Role.Valid() {
			return apperrors.NewIntegrityError("unrecognized role in session claims", nil)
		}
		if _, exists := allowedSet[claims.Role]; !exists {
			return apperrors.NewForbidden("insufficient permissions")
		}
		return c.Next()
	}
}
