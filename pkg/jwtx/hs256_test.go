package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Flacelol/caffewebsite/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256_RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"))
	require.Error(t, err)
}

func TestSignVerifyRoundtrip(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims("user-1", "admin", "admin", "cafe-api", time.Hour, now)

	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWT has three segments")

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "admin", got.Username)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, "cafe-api", got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be populated")
	require.NoError(t, got.ValidateExpiry())
	require.NoError(t, got.ValidateIssuer("cafe-api"))
	require.ErrorIs(t, got.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("user-1", "admin", "admin", "cafe-api", time.Hour, time.Now().UTC())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	_, err = h.Verify(token[:len(token)-1] + string(flipped))
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	signer, err := jwtx.NewHS256(testSecret)
	require.NoError(t, err)
	other, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("u", "admin", "admin", "cafe-api", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := h.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", token)
	}
}

func TestExpiredTokenFailsExpiryCheckOnly(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret)
	require.NoError(t, err)

	// Issued two hours ago with a one hour lifetime.
	issued := time.Now().UTC().Add(-2 * time.Hour)
	token, err := h.Sign(jwtx.NewAccessClaims("u", "admin", "admin", "cafe-api", time.Hour, issued))
	require.NoError(t, err)

	// The signature is fine, so Verify still succeeds.
	claims, err := h.Verify(token)
	require.NoError(t, err)

	// Expiry is where it falls over.
	require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)

	_, err = h.VerifyWithExpiry(token, time.Now().UTC())
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestNotYetValidToken(t *testing.T) {
	h, err := jwtx.NewHS256(testSecret)
	require.NoError(t, err)

	future := time.Now().UTC().Add(time.Hour)
	token, err := h.Sign(jwtx.NewAccessClaims("u", "admin", "admin", "cafe-api", time.Hour, future))
	require.NoError(t, err)

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
}
