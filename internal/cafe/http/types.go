package http

import "github.com/Flacelol/caffewebsite/internal/cafe/service"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userInfo `json:"user"`
}

type addItemRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

type addItemResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type availabilityRequest struct {
	Available *bool `json:"available"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []service.FieldError `json:"errors"`
}

type healthChecks struct {
	Database string `json:"database"`
}

type healthResponse struct {
	Status   string        `json:"status"`
	Uptime   string        `json:"uptime"`
	Version  string        `json:"version"`
	Database string        `json:"database"`
	Checks   *healthChecks `json:"checks,omitempty"`
}
