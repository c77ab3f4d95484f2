package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Flacelol/caffewebsite/pkg/jwtx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

// AuthnMiddleware rejects requests without a valid bearer token before the
// wrapped handler (and therefore the store) is ever reached. Expired tokens
// produce a distinct message from forged or malformed ones.
func AuthnMiddleware(v jwtx.Verifier, issuer string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "invalid token")
				return
			}

			if err := claims.ValidateIssuer(issuer); err != nil {
				writeBearerError(w, "invalid token")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, "token expired")
				} else {
					writeBearerError(w, "invalid token")
				}
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	return ctx
}

// RFC 6750-style bearer error: header for well-behaved clients, JSON body
// for the admin panel's fetch calls.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, desc)
}
