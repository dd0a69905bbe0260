package queries

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the back office summary counters.
type GetDashboardQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a validated dashboard request.
func NewGetDashboardQuery() (GetDashboardQuery, error) {
	return GetDashboardQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}
