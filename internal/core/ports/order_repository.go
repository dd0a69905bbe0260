package ports

import (
	"context"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Returns
	// errs.ConflictError when the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUser retrieves a customer's orders, newest first.
	GetByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetByAgent retrieves the orders assigned to a delivery agent,
	// newest first.
	GetByAgent(ctx context.Context, agentID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order, newest first, optionally filtered by
	// status. An empty status means no filter.
	GetAll(ctx context.Context, status order.Status) ([]*order.Order, error)
}
