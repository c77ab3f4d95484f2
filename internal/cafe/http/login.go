package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Flacelol/caffewebsite/internal/cafe/service"
	"github.com/Flacelol/caffewebsite/pkg/httpx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /api/auth/login.
//
// Responses:
//   - 200: token and user info
//   - 400: malformed body or missing fields
//   - 401: invalid credentials
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var fields []service.FieldError
	if req.Username == "" {
		fields = append(fields, service.FieldError{Field: "username", Message: "username is required"})
	}
	if req.Password == "" {
		fields = append(fields, service.FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, errorsResponse{Errors: fields})
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		log.Error("login failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   token,
		User: userInfo{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	})
}
