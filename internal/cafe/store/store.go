package store

import (
	"context"
	"errors"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// anything else tomorrow) implement this; services only ever see the
// interface so the persistence backend stays swappable.
type Store interface {
	Users() Users
	Categories() Categories
	MenuItems() MenuItems

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback() the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Used for multi-step operations that
	// must land atomically (seeding is the main one).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repositories plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is a case-sensitive exact-match lookup used by login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	// Everything else about a user is immutable after provisioning.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// IsEmpty returns true when no users exist (first boot).
	IsEmpty(ctx context.Context) (bool, error)
}

type Categories interface {
	// ListCategories returns all categories ordered by display_order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// GetCategoryByName resolves a category by its unique name.
	GetCategoryByName(ctx context.Context, name string) (domain.Category, error)

	// CreateCategory inserts a new category.
	CreateCategory(ctx context.Context, c domain.Category) error
}

type MenuItems interface {
	// ListMenuItems returns items joined with their category name, ordered
	// by category display_order then item name. availableOnly filters to
	// items the public menu should show.
	ListMenuItems(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error)

	// GetMenuItemByID returns a single item joined with its category name.
	GetMenuItemByID(ctx context.Context, id string) (domain.MenuItem, error)

	// CreateMenuItem inserts a new item. Fails with a foreign key error if
	// the category does not exist; callers resolve the category first.
	CreateMenuItem(ctx context.Context, item domain.MenuItem) error

	// SetAvailability flips the available flag and bumps updated_at.
	// Returns ErrNotFound when no row matched.
	SetAvailability(ctx context.Context, id string, available bool) error

	// DeleteMenuItem removes one row. Returns ErrNotFound when no row
	// matched so callers can signal it rather than silently no-op.
	DeleteMenuItem(ctx context.Context, id string) error

	// CountMenuItems returns the number of items (seed idempotency check).
	CountMenuItems(ctx context.Context) (int64, error)
}
