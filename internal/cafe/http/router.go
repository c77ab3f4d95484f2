// Package http is the REST surface of the café service: a thin translation
// layer mapping the auth and menu services onto JSON routes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/internal/cafe/service"
	"github.com/Flacelol/caffewebsite/internal/cafe/store"
	"github.com/Flacelol/caffewebsite/pkg/httpx"
	"github.com/Flacelol/caffewebsite/pkg/jwtx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService *service.AuthService
	MenuService *service.MenuService
}

func NewRouter(
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.RecoverMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMenu()
	r.registerSystem()

	// Anything that falls through gets the JSON 404 envelope rather than
	// the ServeMux plain-text default.
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "route not found")
	})
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Login is rate limited hard by IP to slow credential stuffing.
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMenu() {
	menuHandler := &MenuHandler{MenuService: r.MenuService}

	// Public reads. The public page polls these, hence the generous limit.
	r.Mux.Handle("GET /api/categories",
		httpx.Chain(http.HandlerFunc(menuHandler.HandleListCategories),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/menu",
		httpx.Chain(http.HandlerFunc(menuHandler.HandleListMenu),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Mutations and the export need a valid, unexpired token for a role
	// that manages the menu. The middleware rejects before any handler
	// (and therefore the store) runs.
	secure := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier, r.issuer),
			httpx.RequireAnyRole(domain.RoleAdmin, domain.RoleManager),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/menu",
		secure(http.HandlerFunc(menuHandler.HandleAddItem)))
	r.Mux.Handle("PATCH /api/menu/{id}/availability",
		secure(http.HandlerFunc(menuHandler.HandleSetAvailability)))
	r.Mux.Handle("DELETE /api/menu/{id}",
		secure(http.HandlerFunc(menuHandler.HandleDeleteItem)))
	r.Mux.Handle("GET /api/menu/export",
		secure(http.HandlerFunc(menuHandler.HandleExport)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
