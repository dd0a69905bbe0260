// Package ports defines the contracts between the application core and
// infrastructure. These interfaces enable dependency inversion and
// testability: adapters implement them, use cases depend on them.
package ports

import (
	"context"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns errs.ObjectNotFoundError when the product is absent.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetMany retrieves the products with the given identifiers.
	// Missing identifiers are silently absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetAll retrieves every product, optionally filtered by category.
	// An empty category means no filter.
	GetAll(ctx context.Context, category string) ([]*product.Product, error)

	// GetCategories retrieves the distinct product categories in storage.
	GetCategories(ctx context.Context) ([]string, error)

	// Delete removes a product from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// DecrementStock atomically subtracts quantity from the product's stock
	// in the given unit, only when enough stock remains. Returns
	// errs.StockError wrapping errs.ErrInsufficientStock when the
	// conditional update matches no row.
	DecrementStock(ctx context.Context, id kernel.UUID, unit product.UnitKind, quantity float64) error

	// RestoreStock adds quantity back to the product's stock in the given
	// unit. Used when an order is cancelled.
	RestoreStock(ctx context.Context, id kernel.UUID, unit product.UnitKind, quantity float64) error
}
