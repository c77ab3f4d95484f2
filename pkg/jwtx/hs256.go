package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// MinSecretSize is the minimum HMAC secret length we accept. Anything
// shorter undermines the whole scheme.
const MinSecretSize = 32

// Signer turns claims into a signed compact JWT string.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a JWT's signature and shape and returns the claims.
// Expiry is checked separately via Claims.ValidateExpiry so callers can
// distinguish "forged" from "merely stale".
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared HMAC-SHA256 secret.
// It implements both Signer and Verifier.
type HS256 struct {
	secret []byte
	parser *jwt.Parser
}

// NewHS256 builds an HS256 signer/verifier from the shared secret.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) < MinSecretSize {
		return nil, errors.New("jwtx: HS256 secret must be at least 32 bytes")
	}
	return &HS256{
		secret: secret,
		// Claims validation (exp/nbf/iss) happens in our own typed
		// checks, not inside the parser.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

func (h *HS256) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	_, err := h.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrMalformed
		}
	}

	return claims, nil
}

// VerifyWithExpiry is the one-stop validation used by tests and callers
// that don't need to distinguish failure stages.
func (h *HS256) VerifyWithExpiry(token string, now time.Time) (Claims, error) {
	claims, err := h.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
		return Claims{}, ErrExpired
	}
	return claims, nil
}
