package service

import (
	"context"
	"errors"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/internal/cafe/store"
	"github.com/Flacelol/caffewebsite/pkg/cryptox"
	"github.com/Flacelol/caffewebsite/pkg/idx"
	"github.com/Flacelol/caffewebsite/pkg/slogx"
)

// defaultCategories is the fixed category set every deployment starts
// with. display_order is the presentation sort key.
var defaultCategories = []struct {
	Name  string
	Order int
}{
	{"Coffee", 1},
	{"Tea", 2},
	{"Pastries", 3},
	{"Cold Drinks", 4},
}

var sampleItems = []struct {
	Name        string
	Price       float64
	Category    string
	Description string
}{
	{"Espresso", 2.50, "Coffee", "Classic Italian espresso"},
	{"Americano", 3.00, "Coffee", "Espresso with hot water"},
	{"Cappuccino", 4.00, "Coffee", "Espresso with milk foam"},
	{"Latte", 4.50, "Coffee", "Espresso with milk and light foam"},

	{"Black Tea", 2.00, "Tea", "Classic black tea"},
	{"Green Tea", 2.00, "Tea", "Refreshing green tea"},
	{"Lemon Tea", 2.50, "Tea", "Black tea with lemon"},

	{"Croissant", 3.50, "Pastries", "French butter croissant"},
	{"Blueberry Muffin", 4.00, "Pastries", "Homemade muffin with blueberries"},
	{"Cheesecake", 5.50, "Pastries", "Delicate cheesecake with berries"},

	{"Iced Coffee", 4.00, "Cold Drinks", "Cold coffee over ice"},
	{"Lemonade", 3.00, "Cold Drinks", "Homemade lemonade"},
	{"Berry Smoothie", 5.00, "Cold Drinks", "Smoothie from fresh berries"},
}

// SeedService provisions first-boot data: the default admin account, the
// fixed category set and, optionally, a sample menu. Safe to run on every
// startup; existing data is left untouched.
type SeedService struct {
	Store         store.Store
	AdminUsername string
	AdminPassword string
	SampleMenu    bool
}

// Seed runs the whole provisioning pass in one transaction so a partially
// seeded database can never be observed.
func (s *SeedService) Seed(ctx context.Context) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := s.seedAdmin(ctx, tx); err != nil {
			return err
		}
		if err := s.seedCategories(ctx, tx); err != nil {
			return err
		}
		if s.SampleMenu {
			if err := s.seedSampleMenu(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SeedService) seedAdmin(ctx context.Context, tx store.Tx) error {
	l := slogx.FromContext(ctx)

	empty, err := tx.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return err
	}

	if err := tx.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     s.AdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}); err != nil {
		return err
	}

	l.Info("default admin account created", "username", s.AdminUsername)
	return nil
}

func (s *SeedService) seedCategories(ctx context.Context, tx store.Tx) error {
	l := slogx.FromContext(ctx)

	created := 0
	for _, c := range defaultCategories {
		_, err := tx.Categories().GetCategoryByName(ctx, c.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Categories().CreateCategory(ctx, domain.Category{
			ID:           idx.New().String(),
			Name:         c.Name,
			DisplayOrder: c.Order,
		}); err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		l.Info("default categories created", "count", created)
	}
	return nil
}

func (s *SeedService) seedSampleMenu(ctx context.Context, tx store.Tx) error {
	l := slogx.FromContext(ctx)

	count, err := tx.MenuItems().CountMenuItems(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range sampleItems {
		category, err := tx.Categories().GetCategoryByName(ctx, item.Category)
		if err != nil {
			return err
		}

		if err := tx.MenuItems().CreateMenuItem(ctx, domain.MenuItem{
			ID:          idx.New().String(),
			Name:        item.Name,
			Price:       item.Price,
			CategoryID:  category.ID,
			Available:   true,
			Description: item.Description,
		}); err != nil {
			return err
		}
	}

	l.Info("sample menu seeded", "items", len(sampleItems))
	return nil
}
