package queries

import (
	"context"

	"gorm.io/gorm"

	"veggo/internal/pkg/errs"
)

// GetProductQueryHandler retrieves a single catalog entry.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for catalog lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the catalog lookup.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	var rows []productRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = ?
	`, query.ProductID().String()).Scan(&rows).Error
	if err != nil {
		return ProductView{}, err
	}
	if len(rows) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("productId", query.ProductID().String())
	}

	return productViewFromRow(rows[0]), nil
}
