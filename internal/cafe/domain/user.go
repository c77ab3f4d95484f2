package domain

import "time"

// Roles an account can hold. Both may manage the menu; the distinction is
// kept for future admin-only operations (user management, exports stay
// open to both).
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
