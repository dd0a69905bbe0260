package queries

import (
	"context"

	"gorm.io/gorm"

	"veggo/internal/pkg/errs"
)

// GetAgentProfileQueryHandler retrieves a single agent profile.
type GetAgentProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentProfileQueryHandler creates a handler for agent profile lookups.
func NewGetAgentProfileQueryHandler(db *gorm.DB) GetAgentProfileQueryHandler {
	return GetAgentProfileQueryHandler{db: db}
}

// Handle executes the profile lookup.
func (h GetAgentProfileQueryHandler) Handle(ctx context.Context, query GetAgentProfileQuery) (AgentView, error) {
	if err := query.Validate(); err != nil {
		return AgentView{}, err
	}

	var views []AgentView
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, vehicle, license_number, approved,
			loc_lat, loc_lng, loc_reported_at, created_at
		FROM agents
		WHERE id = ?
	`, query.AgentID().String()).Scan(&views).Error
	if err != nil {
		return AgentView{}, err
	}
	if len(views) == 0 {
		return AgentView{}, errs.NewObjectNotFoundError("agentId", query.AgentID().String())
	}

	return views[0], nil
}
