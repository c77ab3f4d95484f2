package sqlite

import (
	"context"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
)

type categoriesRepo struct {
	db dbtx
}

func (r *categoriesRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, display_order, created_at
		 FROM categories
		 ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoriesRepo) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, display_order, created_at FROM categories WHERE name = ?`,
		name).Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, display_order, created_at)
		 VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.DisplayOrder, time.Now().UTC())
	return mapConstraint(err)
}
