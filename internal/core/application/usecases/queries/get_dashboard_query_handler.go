package queries

import (
	"context"

	"gorm.io/gorm"
)

// DashboardView is the back office summary: headcounts and order volume at a
// glance.
type DashboardView struct {
	TotalUsers     int64 `json:"total_users"`
	TotalAgents    int64 `json:"total_agents"`
	ApprovedAgents int64 `json:"approved_agents"`
	PendingAgents  int64 `json:"pending_agents"`
	TotalProducts  int64 `json:"total_products"`
	TotalOrders    int64 `json:"total_orders"`
	PendingOrders  int64 `json:"pending_orders"`
}

// GetDashboardQueryHandler computes the back office summary counters.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for the dashboard summary.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the dashboard summary.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardView, error) {
	if err := query.Validate(); err != nil {
		return DashboardView{}, err
	}

	var view DashboardView
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM agents) AS total_agents,
			(SELECT COUNT(*) FROM agents WHERE approved) AS approved_agents,
			(SELECT COUNT(*) FROM agents WHERE NOT approved) AS pending_agents,
			(SELECT COUNT(*) FROM products) AS total_products,
			(SELECT COUNT(*) FROM orders) AS total_orders,
			(SELECT COUNT(*) FROM orders WHERE status = 'pending') AS pending_orders
	`).Scan(&view).Error
	if err != nil {
		return DashboardView{}, err
	}

	return view, nil
}
