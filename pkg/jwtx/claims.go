// Package jwtx issues and verifies the stateless bearer tokens the café
// admin API runs on. Tokens are HS256 JWTs; nothing is stored server-side,
// so validity is purely signature plus expiry.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default access token lifetime. Admin sessions are
// expected to last a working day.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the access-token claims. Keep changes additive so previously
// issued tokens stay decodable until they expire.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated account.
	Username string `json:"username,omitempty"`

	// Role is the account role ("admin" or "manager").
	Role string `json:"role,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a login.
func NewAccessClaims(
	subject, username, role, issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		Role:     role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer claim against the expected value.
// An empty expected value enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
