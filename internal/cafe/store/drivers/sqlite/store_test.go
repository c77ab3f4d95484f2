package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/internal/cafe/store"
	"github.com/Flacelol/caffewebsite/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func createCategory(t *testing.T, st *Store, name string, order int) domain.Category {
	t.Helper()

	c := domain.Category{ID: idx.New().String(), Name: name, DisplayOrder: order}
	require.NoError(t, st.Categories().CreateCategory(context.Background(), c))
	return c
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	t.Run("empty on first boot", func(t *testing.T) {
		empty, err := st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	user := domain.User{
		ID:           idx.New().String(),
		Username:     "admin",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	t.Run("lookup by username", func(t *testing.T) {
		got, err := st.Users().GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("unknown username maps to ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByUsername(ctx, "ghost")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username maps to ErrAlreadyExists", func(t *testing.T) {
		dup := domain.User{ID: idx.New().String(), Username: "admin", PasswordHash: "x", Role: domain.RoleManager}
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update password hash", func(t *testing.T) {
		require.NoError(t, st.Users().UpdatePasswordHash(ctx, user.ID, "newhash"))

		got, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "newhash", got.PasswordHash)
	})
}

func TestMenuItemsRepo(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	coffee := createCategory(t, st, "Coffee", 1)
	tea := createCategory(t, st, "Tea", 2)

	espresso := domain.MenuItem{
		ID:          idx.New().String(),
		Name:        "Espresso",
		Price:       2.50,
		CategoryID:  coffee.ID,
		Available:   true,
		Description: "Classic Italian espresso",
	}
	require.NoError(t, st.MenuItems().CreateMenuItem(ctx, espresso))

	chai := domain.MenuItem{
		ID:         idx.New().String(),
		Name:       "Chai",
		Price:      3.00,
		CategoryID: tea.ID,
		Available:  false,
	}
	require.NoError(t, st.MenuItems().CreateMenuItem(ctx, chai))

	t.Run("list joins category names in display order", func(t *testing.T) {
		items, err := st.MenuItems().ListMenuItems(ctx, false)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, "Espresso", items[0].Name)
		require.Equal(t, "Coffee", items[0].CategoryName)
		require.Equal(t, "Tea", items[1].CategoryName)
	})

	t.Run("availableOnly filters", func(t *testing.T) {
		items, err := st.MenuItems().ListMenuItems(ctx, true)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "Espresso", items[0].Name)
	})

	t.Run("availability round trips as a bool", func(t *testing.T) {
		require.NoError(t, st.MenuItems().SetAvailability(ctx, chai.ID, true))

		got, err := st.MenuItems().GetMenuItemByID(ctx, chai.ID)
		require.NoError(t, err)
		require.True(t, got.Available)
	})

	t.Run("empty optional fields read back empty", func(t *testing.T) {
		got, err := st.MenuItems().GetMenuItemByID(ctx, chai.ID)
		require.NoError(t, err)
		require.Empty(t, got.Description)
		require.Empty(t, got.ImageURL)
	})

	t.Run("mutations on missing rows report ErrNotFound", func(t *testing.T) {
		missing := idx.New().String()
		require.ErrorIs(t, st.MenuItems().SetAvailability(ctx, missing, true), store.ErrNotFound)
		require.ErrorIs(t, st.MenuItems().DeleteMenuItem(ctx, missing), store.ErrNotFound)
	})

	t.Run("unknown category id violates the foreign key", func(t *testing.T) {
		orphan := domain.MenuItem{
			ID:         idx.New().String(),
			Name:       "Orphan",
			Price:      1.00,
			CategoryID: idx.New().String(),
		}
		require.Error(t, st.MenuItems().CreateMenuItem(ctx, orphan))
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	sentinel := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Categories().CreateCategory(ctx, domain.Category{
			ID: idx.New().String(), Name: "Coffee", DisplayOrder: 1,
		}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	categories, err := st.Categories().ListCategories(ctx)
	require.NoError(t, err)
	require.Empty(t, categories)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Categories().CreateCategory(ctx, domain.Category{
			ID: idx.New().String(), Name: "Coffee", DisplayOrder: 1,
		})
	})
	require.NoError(t, err)

	categories, err := st.Categories().ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
}
