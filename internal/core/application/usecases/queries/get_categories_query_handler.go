package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCategoriesQueryHandler retrieves the distinct categories present in the
// catalog, for storefront navigation.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category listings.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the category listing.
func (h GetCategoriesQueryHandler) Handle(ctx context.Context, query GetCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var categories []string
	err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM products
		WHERE category <> ''
		ORDER BY category
	`).Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
