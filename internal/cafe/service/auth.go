package service

import (
	"context"
	"errors"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/internal/cafe/store"
	"github.com/Flacelol/caffewebsite/pkg/cryptox"
	"github.com/Flacelol/caffewebsite/pkg/jwtx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords. Keeping the two indistinguishable prevents user enumeration.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// dummyHash is verified on the unknown-username path so both failure paths
// cost one argon2 evaluation and take comparable time.
var dummyHash = func() string {
	h, err := cryptox.HashPassword(jwtx.NewJTI())
	if err != nil {
		panic(err)
	}
	return h
}()

// AuthService verifies credentials and issues stateless bearer tokens.
// No session state lives server-side; a token is valid iff its signature
// checks out and it has not expired.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Login authenticates username/password and returns a signed token plus
// the account it belongs to.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			l.Info("login failed", "username", username)
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", "username", username)
		return "", domain.User{}, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Username, user.Role, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, err
	}

	l.Info("login succeeded", "username", user.Username, "role", user.Role)
	return token, user, nil
}
