package service

import (
	"context"
	"testing"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/pkg/cryptox"
	"github.com/Flacelol/caffewebsite/pkg/idx"
	"github.com/Flacelol/caffewebsite/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	return &AuthService{
		Store:    newTestStore(t),
		Signer:   signer,
		Issuer:   "test-issuer",
		TokenTTL: time.Hour,
	}
}

func createUser(t *testing.T, svc *AuthService, username, password, role string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, svc.Store.Users().CreateUser(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)
	user := createUser(t, svc, "admin", "cafe2024", domain.RoleAdmin)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, got, err := svc.Login(ctx, "admin", "cafe2024")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		verifier, ok := svc.Signer.(jwtx.Verifier)
		require.True(t, ok)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "admin", claims.Username)
		require.Equal(t, domain.RoleAdmin, claims.Role)
		require.NoError(t, claims.ValidateIssuer("test-issuer"))
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("token expiry honors the configured TTL", func(t *testing.T) {
		token, _, err := svc.Login(ctx, "admin", "cafe2024")
		require.NoError(t, err)

		claims, err := svc.Signer.(jwtx.Verifier).Verify(token)
		require.NoError(t, err)
		require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, _, wrongPass := svc.Login(ctx, "admin", "nope")
		_, _, noUser := svc.Login(ctx, "ghost", "nope")

		require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		require.ErrorIs(t, noUser, ErrInvalidCredentials)
		require.Equal(t, wrongPass.Error(), noUser.Error())
	})

	t.Run("empty password fails", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "admin", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
