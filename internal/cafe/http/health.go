package http

import (
	"net/http"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/store"
	"github.com/Flacelol/caffewebsite/pkg/httpx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

// HealthHandler reports service liveness for GET /api/health. A failed
// database ping degrades the status to 503 so load balancers stop routing
// here, but the process stays up.
func HealthHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:   "ok",
			Uptime:   time.Since(startTime).Round(time.Second).String(),
			Version:  version,
			Database: "sqlite",
			Checks:   &healthChecks{Database: "ok"},
		}

		code := http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("health check failed", "error", err)
			resp.Status = "degraded"
			resp.Checks.Database = "unreachable"
			code = http.StatusServiceUnavailable
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, code, resp)
	})
}
