package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
	"github.com/Flacelol/caffewebsite/internal/cafe/store"
	"github.com/Flacelol/caffewebsite/pkg/idx"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field problems with a request. The API layer
// turns it into a 400 with an errors array.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AddItemParams are the inputs for creating a menu item. Category is the
// category name, matching what the clients send.
type AddItemParams struct {
	Name        string
	Price       float64
	Category    string
	Description string
	ImageURL    string
}

func (p AddItemParams) validate() *ValidationError {
	var fields []FieldError
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		fields = append(fields, FieldError{Field: "price", Message: "price must be a non-negative number"})
	}
	if strings.TrimSpace(p.Category) == "" {
		fields = append(fields, FieldError{Field: "category", Message: "category is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// MenuService owns the category and menu item lifecycle.
type MenuService struct {
	Store store.Store
}

// ListMenu returns the menu grouped by category name. Every category gets
// an entry, empty ones included, so clients can render stable tabs.
// availableOnly scopes the result to the public-facing view.
func (s *MenuService) ListMenu(ctx context.Context, availableOnly bool) (domain.Menu, error) {
	categories, err := s.Store.Categories().ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.Store.MenuItems().ListMenuItems(ctx, availableOnly)
	if err != nil {
		return nil, err
	}

	menu := make(domain.Menu, len(categories))
	for _, c := range categories {
		menu[c.Name] = []domain.MenuItem{}
	}
	for _, item := range items {
		menu[item.CategoryName] = append(menu[item.CategoryName], item)
	}
	return menu, nil
}

// ListCategories returns all categories ordered by display_order.
func (s *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Store.Categories().ListCategories(ctx)
}

// AddItem validates params, resolves the category by name and inserts a
// new item. New items are available by default.
func (s *MenuService) AddItem(ctx context.Context, params AddItemParams) (domain.MenuItem, error) {
	if verr := params.validate(); verr != nil {
		return domain.MenuItem{}, verr
	}

	category, err := s.Store.Categories().GetCategoryByName(ctx, strings.TrimSpace(params.Category))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MenuItem{}, ErrCategoryNotFound
		}
		return domain.MenuItem{}, err
	}

	item := domain.MenuItem{
		ID:          idx.New().String(),
		Name:        strings.TrimSpace(params.Name),
		Price:       params.Price,
		CategoryID:  category.ID,
		Available:   true,
		Description: strings.TrimSpace(params.Description),
		ImageURL:    strings.TrimSpace(params.ImageURL),
	}
	if err := s.Store.MenuItems().CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItem{}, err
	}

	// Re-read so the caller gets the stored timestamps and category name.
	return s.Store.MenuItems().GetMenuItemByID(ctx, item.ID)
}

// SetAvailability flips an item's available flag and returns the updated
// item.
func (s *MenuService) SetAvailability(ctx context.Context, id string, available bool) (domain.MenuItem, error) {
	if err := s.Store.MenuItems().SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MenuItem{}, ErrItemNotFound
		}
		return domain.MenuItem{}, err
	}
	return s.Store.MenuItems().GetMenuItemByID(ctx, id)
}

// DeleteItem removes an item. A missing item is reported explicitly, not
// swallowed, so a double delete surfaces to the caller.
func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	if err := s.Store.MenuItems().DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

// Export produces the downloadable snapshot the admin panel offers: the
// full menu (unavailable items included) plus the category list.
func (s *MenuService) Export(ctx context.Context) (domain.MenuExport, error) {
	categories, err := s.Store.Categories().ListCategories(ctx)
	if err != nil {
		return domain.MenuExport{}, err
	}
	menu, err := s.ListMenu(ctx, false)
	if err != nil {
		return domain.MenuExport{}, err
	}
	return domain.MenuExport{
		ExportedAt: time.Now().UTC(),
		Categories: categories,
		Menu:       menu,
	}, nil
}
