package queries

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the catalog, optionally narrowed to a category
// and to listed products only. An empty category means no filter.
type GetProductsQuery struct { //nolint:recvcheck //using for validation
	category      string
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a validated catalog listing request.
func NewGetProductsQuery(category string, onlyAvailable bool) (GetProductsQuery, error) {
	return GetProductsQuery{
		category:      category,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) Category() string    { return q.category }
func (q GetProductsQuery) OnlyAvailable() bool { return q.onlyAvailable }
