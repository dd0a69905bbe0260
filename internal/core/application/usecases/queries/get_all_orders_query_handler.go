package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves orders across all customers for back
// office views.
type GetAllOrdersQueryHandler struct {
	db           *gorm.DB
	cancelWindow time.Duration
	now          func() time.Time
}

// NewGetAllOrdersQueryHandler creates a handler for full order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB, cancelWindow time.Duration) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{
		db:           db,
		cancelWindow: cancelWindow,
		now:          time.Now,
	}
}

// Handle executes the order listing.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Status() != "" {
		return loadOrderViews(ctx, h.db, h.cancelWindow, h.now(), `
			SELECT `+orderColumns+`
			FROM orders
			WHERE status = ?
			ORDER BY created_at DESC
		`, query.Status())
	}

	return loadOrderViews(ctx, h.db, h.cancelWindow, h.now(), `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
	`)
}
