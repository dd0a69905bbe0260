package queries

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves every registered customer for back office views.
type GetAllUsersQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a validated customer listing request.
func NewGetAllUsersQuery() (GetAllUsersQuery, error) {
	return GetAllUsersQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}
