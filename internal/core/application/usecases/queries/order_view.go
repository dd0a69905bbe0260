// Package queries contains read-side operations in the CQRS architecture.
// Handlers read the database directly and return denormalized view structs;
// they never mutate state.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderItemView is one priced line of an order as shown to clients.
type OrderItemView struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	Total        float64 `json:"total"`
}

// AgentSummaryView is the assigned agent's contact card with their last
// reported position, surfaced on customer order views.
type AgentSummaryView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Lat        *float64   `json:"lat,omitempty"`
	Lng        *float64   `json:"lng,omitempty"`
	ReportedAt *time.Time `json:"location_reported_at,omitempty"`
}

// OrderView is the full order read model. CanCancel is recomputed from the
// status and the cancel window on every read, never loaded from storage.
type OrderView struct {
	ID              string            `json:"id"`
	OrderNumber     string            `json:"order_number"`
	UserID          string            `json:"user_id"`
	Items           []OrderItemView   `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	DeliveryFee     float64           `json:"delivery_fee"`
	DistanceKm      float64           `json:"distance_km"`
	FinalPrice      float64           `json:"final_price"`
	Status          string            `json:"status"`
	DeliveryAddress string            `json:"delivery_address"`
	DestLat         float64           `json:"dest_lat"`
	DestLng         float64           `json:"dest_lng"`
	Phone           string            `json:"phone"`
	Notes           string            `json:"notes,omitempty"`
	CanCancel       bool              `json:"can_cancel"`
	Agent           *AgentSummaryView `json:"agent,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
	CancelledBy     string            `json:"cancelled_by,omitempty"`
}

type orderRow struct {
	ID              string
	Number          string
	UserID          string
	Subtotal        float64
	DeliveryFee     float64
	DistanceKm      float64
	FinalPrice      float64
	Status          string
	DeliveryAddress string
	DestLat         float64
	DestLng         float64
	Phone           string
	Notes           string
	AgentID         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CancelledAt     *time.Time
	CancelledBy     string
}

type orderItemRow struct {
	OrderID      string
	ProductID    string
	ProductName  string
	Quantity     float64
	Unit         string
	PricePerUnit float64
	Total        float64
}

type agentSummaryRow struct {
	ID            string
	Name          string
	Phone         string
	LocLat        *float64
	LocLng        *float64
	LocReportedAt *time.Time
}

const orderColumns = `
	id, number, user_id, subtotal, delivery_fee, distance_km, final_price,
	status, delivery_address, dest_lat, dest_lng, phone, notes, agent_id,
	created_at, updated_at, cancelled_at, cancelled_by
`

// loadOrderViews runs the given order query and assembles full views,
// fetching lines and assigned agent summaries in one batch each.
func loadOrderViews(
	ctx context.Context,
	db *gorm.DB,
	cancelWindow time.Duration,
	now time.Time,
	query string,
	args ...any,
) ([]OrderView, error) {
	var rows []orderRow
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []OrderView{}, nil
	}

	orderIDs := make([]string, 0, len(rows))
	agentIDs := make([]string, 0, len(rows))
	for _, r := range rows {
		orderIDs = append(orderIDs, r.ID)
		if r.AgentID != nil {
			agentIDs = append(agentIDs, *r.AgentID)
		}
	}

	var itemRows []orderItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, product_name, quantity, unit, price_per_unit, total
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]OrderItemView, len(rows))
	for _, ir := range itemRows {
		itemsByOrder[ir.OrderID] = append(itemsByOrder[ir.OrderID], OrderItemView{
			ProductID:    ir.ProductID,
			ProductName:  ir.ProductName,
			Quantity:     ir.Quantity,
			Unit:         ir.Unit,
			PricePerUnit: ir.PricePerUnit,
			Total:        ir.Total,
		})
	}

	agentsByID := make(map[string]AgentSummaryView)
	if len(agentIDs) > 0 {
		var agentRows []agentSummaryRow
		err = db.WithContext(ctx).Raw(`
			SELECT id, name, phone, loc_lat, loc_lng, loc_reported_at
			FROM agents
			WHERE id IN ?
		`, agentIDs).Scan(&agentRows).Error
		if err != nil {
			return nil, err
		}
		for _, ar := range agentRows {
			agentsByID[ar.ID] = AgentSummaryView{
				ID:         ar.ID,
				Name:       ar.Name,
				Phone:      ar.Phone,
				Lat:        ar.LocLat,
				Lng:        ar.LocLng,
				ReportedAt: ar.LocReportedAt,
			}
		}
	}

	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		view := OrderView{
			ID:              r.ID,
			OrderNumber:     r.Number,
			UserID:          r.UserID,
			Items:           itemsByOrder[r.ID],
			Subtotal:        r.Subtotal,
			DeliveryFee:     r.DeliveryFee,
			DistanceKm:      r.DistanceKm,
			FinalPrice:      r.FinalPrice,
			Status:          r.Status,
			DeliveryAddress: r.DeliveryAddress,
			DestLat:         r.DestLat,
			DestLng:         r.DestLng,
			Phone:           r.Phone,
			Notes:           r.Notes,
			CanCancel:       canCancel(r.Status, r.CreatedAt, cancelWindow, now),
			CreatedAt:       r.CreatedAt,
			UpdatedAt:       r.UpdatedAt,
			CancelledAt:     r.CancelledAt,
			CancelledBy:     r.CancelledBy,
		}
		if r.AgentID != nil {
			if summary, ok := agentsByID[*r.AgentID]; ok {
				view.Agent = &summary
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func canCancel(status string, createdAt time.Time, window time.Duration, now time.Time) bool {
	if status != "pending" && status != "confirmed" {
		return false
	}
	return now.Sub(createdAt) <= window
}
