package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Flacelol/caffewebsite/internal/cafe/domain"
)

type menuItemsRepo struct {
	db dbtx
}

const menuItemColumns = `
	mi.id, mi.name, mi.price, mi.category_id, c.name,
	mi.available, mi.description, mi.image_url, mi.created_at, mi.updated_at`

func (r *menuItemsRepo) ListMenuItems(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id`
	if availableOnly {
		query += ` WHERE mi.available = 1`
	}
	query += ` ORDER BY c.display_order, mi.name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuItemsRepo) GetMenuItemByID(ctx context.Context, id string) (domain.MenuItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+menuItemColumns+`
		 FROM menu_items mi
		 JOIN categories c ON c.id = mi.category_id
		 WHERE mi.id = ?`, id)
	return scanMenuItem(row)
}

func (r *menuItemsRepo) CreateMenuItem(ctx context.Context, item domain.MenuItem) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_items
			(id, name, price, category_id, available, description, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Price, item.CategoryID, boolToInt(item.Available),
		mapStringNull(item.Description), mapStringNull(item.ImageURL), now, now)
	return mapConstraint(err)
}

func (r *menuItemsRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET available = ?, updated_at = ? WHERE id = ?`,
		boolToInt(available), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *menuItemsRepo) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *menuItemsRepo) CountMenuItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	return count, err
}

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var (
		item        domain.MenuItem
		available   int64
		description sql.NullString
		imageURL    sql.NullString
	)
	err := row.Scan(
		&item.ID, &item.Name, &item.Price, &item.CategoryID, &item.CategoryName,
		&available, &description, &imageURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return domain.MenuItem{}, mapNotFound(err)
	}

	item.Available = available != 0
	item.Description = mapNullString(description)
	item.ImageURL = mapNullString(imageURL)
	return item, nil
}
