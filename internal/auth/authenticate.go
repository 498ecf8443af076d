package auth

import "github.com/gofiber/fiber/v2"

const claimsKey = "auth_claims"

// Authenticator resolves incoming requests to identity claims.
type Authenticator struct {
	tokens *TokenManager
}

// NewAuthenticator constructs an authenticator over the token manager.
func NewAuthenticator(tokens *TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Resolve extracts and verifies the request's session token. Any failure at
// either stage yields nil (anonymous); no error crosses this boundary into
// the route layer.
func (a *Authenticator) Resolve(c *fiber.Ctx) *Claims {
	token := TokenFromRequest(c)
	if token == "" {
		return nil
	}
	return a.tokens.Verify(token)
}

// ClaimsFromContext retrieves claims attached by the gate middleware.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
