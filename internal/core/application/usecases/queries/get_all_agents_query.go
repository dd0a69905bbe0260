package queries

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves every delivery agent, approved or pending.
type GetAllAgentsQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a validated agent listing request.
func NewGetAllAgentsQuery() (GetAllAgentsQuery, error) {
	return GetAllAgentsQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}
