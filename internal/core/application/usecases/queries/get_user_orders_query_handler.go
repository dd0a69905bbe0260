package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a customer's orders, newest first.
type GetUserOrdersQueryHandler struct {
	db           *gorm.DB
	cancelWindow time.Duration
	now          func() time.Time
}

// NewGetUserOrdersQueryHandler creates a handler for order history lookups.
func NewGetUserOrdersQueryHandler(db *gorm.DB, cancelWindow time.Duration) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{
		db:           db,
		cancelWindow: cancelWindow,
		now:          time.Now,
	}
}

// Handle executes the order history lookup.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db, h.cancelWindow, h.now(), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().String())
}
