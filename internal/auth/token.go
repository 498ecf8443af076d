package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/lms-service/internal/domain"
)

// DefaultTokenTTL is the validity window applied when no override is
// configured.
const DefaultTokenTTL = 168 * time.Hour

// TokenManager handles issuing and verifying signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. An empty secret is refused: tokens
// signed with no secret would be forgeable, so callers are expected to
// treat this error as fatal at startup.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Claims is the identity payload carried inside a session token. Role is
// fixed at issuance; a mid-session role change only takes effect once the
// user authenticates again.
type Claims struct {
	UserID string      `json:"uid"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TTL returns the configured validity window.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue signs a token for the user with the default TTL.
func (tm *TokenManager) Issue(userID, email string, role domain.Role) (string, time.Time, error) {
	return tm.IssueFor(userID, email, role, tm.ttl)
}

// IssueFor signs a token with an explicit TTL. Issuance and expiry
// timestamps are embedded here, never supplied by the caller.
func (tm *TokenManager) IssueFor(userID, email string, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature, algorithm and expiry, returning the decoded
// claims on success and nil on any failure. Every parse and crypto error is
// normalized here; nothing past this boundary distinguishes a bad signature
// from an expired or malformed token.
func (tm *TokenManager) Verify(tokenStr string) *Claims {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil
	}
	return claims
}
