package queries

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/guard"
)

var ErrGetAgentProfileQueryIsNotConstructed = errors.New(
	"GetAgentProfileQuery must be created via NewGetAgentProfileQuery constructor",
)

// GetAgentProfileQuery requests a single agent's profile.
type GetAgentProfileQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentProfileQuery creates a validated profile query.
func NewGetAgentProfileQuery(agentID kernel.UUID) (GetAgentProfileQuery, error) {
	q := GetAgentProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetAgentProfileQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentProfileQueryIsNotConstructed)
}

func (q GetAgentProfileQuery) AgentID() kernel.UUID { return q.agentID }

func (q *GetAgentProfileQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	q.agentID = agentID
	return nil
}
