package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the product catalog for storefront and
// back office listings.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the catalog listing.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + productColumns + `
		FROM products
	`
	var args []any
	switch {
	case query.Category() != "" && query.OnlyAvailable():
		sql += ` WHERE category = ? AND is_available`
		args = append(args, query.Category())
	case query.Category() != "":
		sql += ` WHERE category = ?`
		args = append(args, query.Category())
	case query.OnlyAvailable():
		sql += ` WHERE is_available`
	}
	sql += ` ORDER BY name`

	var rows []productRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, productViewFromRow(row))
	}
	return views, nil
}
