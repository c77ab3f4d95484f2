package domain

import "time"

// Category groups menu items for display. The seeded set is ordered by
// DisplayOrder, which is a stable presentation sort key.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// MenuItem is a single orderable item. Available controls whether the
// public menu shows it; the admin panel always sees every item.
type MenuItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category,omitempty"`
	Available    bool      `json:"available"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Menu maps category name to the items in it, ordered by category
// display_order then item name. Every known category has an entry, empty
// categories included, so the clients can render stable tabs.
type Menu map[string][]MenuItem

// MenuExport is the downloadable snapshot the admin panel offers.
type MenuExport struct {
	ExportedAt time.Time  `json:"exported_at"`
	Categories []Category `json:"categories"`
	Menu       Menu       `json:"menu"`
}
