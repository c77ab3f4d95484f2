package service

import (
	"context"
	"testing"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/internal/cafe/store/drivers/sqlite"
	"github.com/Flacelol/caffewebsite/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &SeedService{
		Store:         st,
		AdminUsername: "admin",
		AdminPassword: "cafe2024",
		SampleMenu:    true,
	}
	require.NoError(t, svc.Seed(ctx))

	t.Run("creates the admin account", func(t *testing.T) {
		admin, err := st.Users().GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, admin.Role)
		require.NoError(t, cryptox.VerifyPassword("cafe2024", admin.PasswordHash))
	})

	t.Run("creates the default categories in display order", func(t *testing.T) {
		categories, err := st.Categories().ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 4)

		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = c.Name
		}
		require.Equal(t, []string{"Coffee", "Tea", "Pastries", "Cold Drinks"}, names)
	})

	t.Run("creates the sample menu", func(t *testing.T) {
		count, err := st.MenuItems().CountMenuItems(ctx)
		require.NoError(t, err)
		require.EqualValues(t, len(sampleItems), count)
	})

	t.Run("second run changes nothing", func(t *testing.T) {
		require.NoError(t, svc.Seed(ctx))

		count, err := st.MenuItems().CountMenuItems(ctx)
		require.NoError(t, err)
		require.EqualValues(t, len(sampleItems), count)
	})

	t.Run("user table no longer reads as empty", func(t *testing.T) {
		empty, err := st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})
}

func TestSeedWithoutSampleMenu(t *testing.T) {
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &SeedService{
		Store:         st,
		AdminUsername: "admin",
		AdminPassword: "cafe2024",
	}
	require.NoError(t, svc.Seed(ctx))

	count, err := st.MenuItems().CountMenuItems(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	categories, err := st.Categories().ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
}
