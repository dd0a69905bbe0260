package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// AgentView is the read model for agent listings.
type AgentView struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Vehicle       string     `json:"vehicle"`
	LicenseNumber string     `json:"license_number"`
	Approved      bool       `json:"approved"`
	LocLat        *float64   `json:"loc_lat"`
	LocLng        *float64   `json:"loc_lng"`
	LocReportedAt *time.Time `json:"loc_reported_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// GetAllAgentsQueryHandler retrieves delivery agents for back office views.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent listings.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the agent listing.
func (h GetAllAgentsQueryHandler) Handle(ctx context.Context, query GetAllAgentsQuery) ([]AgentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var views []AgentView
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, vehicle, license_number, approved,
			loc_lat, loc_lng, loc_reported_at, created_at
		FROM agents
		ORDER BY created_at DESC
	`).Scan(&views).Error
	if err != nil {
		return nil, err
	}

	return views, nil
}
