package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"veggo/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order view from the database,
// enforcing who may look at it.
type GetOrderQueryHandler struct {
	db           *gorm.DB
	cancelWindow time.Duration
	now          func() time.Time
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// cancelWindow feeds the recomputed can_cancel flag.
func NewGetOrderQueryHandler(db *gorm.DB, cancelWindow time.Duration) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:           db,
		cancelWindow: cancelWindow,
		now:          time.Now,
	}
}

// Handle executes the lookup. Returns a not-found error for unknown orders
// and a forbidden error when the actor may not see the order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := loadOrderViews(ctx, h.db, h.cancelWindow, h.now(), `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String())
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	view := views[0]
	switch query.ActorKind() {
	case "user":
		if view.UserID != query.ActorID().String() {
			return OrderView{}, errs.NewForbiddenError("order belongs to another customer")
		}
	case "agent":
		if view.Agent == nil || view.Agent.ID != query.ActorID().String() {
			return OrderView{}, errs.NewForbiddenError("order is assigned to another agent")
		}
	}

	return view, nil
}
