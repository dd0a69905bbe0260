package queries

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves the orders assigned to a delivery agent.
type GetAgentOrdersQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a validated assignment lookup.
func NewGetAgentOrdersQuery(agentID kernel.UUID) (GetAgentOrdersQuery, error) {
	q := GetAgentOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

func (q GetAgentOrdersQuery) AgentID() kernel.UUID { return q.agentID }

func (q *GetAgentOrdersQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	q.agentID = agentID
	return nil
}
