package queries

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery retrieves the distinct product categories.
type GetCategoriesQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a validated category listing request.
func NewGetCategoriesQuery() (GetCategoriesQuery, error) {
	return GetCategoriesQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}
