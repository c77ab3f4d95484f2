package httpx

import (
	"net/http"

	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

// RecoverMiddleware converts a panicking handler into an opaque 500. The
// panic value and stack stay in the logs; the client only ever sees the
// generic error envelope.
func RecoverMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slogx.FromContext(r.Context()).Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
					)
					WriteError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
