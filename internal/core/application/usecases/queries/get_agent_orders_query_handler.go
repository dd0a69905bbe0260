package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler retrieves an agent's assigned orders, newest
// first.
type GetAgentOrdersQueryHandler struct {
	db           *gorm.DB
	cancelWindow time.Duration
	now          func() time.Time
}

// NewGetAgentOrdersQueryHandler creates a handler for assignment lookups.
func NewGetAgentOrdersQueryHandler(db *gorm.DB, cancelWindow time.Duration) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{
		db:           db,
		cancelWindow: cancelWindow,
		now:          time.Now,
	}
}

// Handle executes the assignment lookup.
func (h GetAgentOrdersQueryHandler) Handle(ctx context.Context, query GetAgentOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db, h.cancelWindow, h.now(), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE agent_id = ?
		ORDER BY created_at DESC
	`, query.AgentID().String())
}
