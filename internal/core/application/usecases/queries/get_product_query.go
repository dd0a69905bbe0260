package queries

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog entry.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a validated catalog lookup.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	q := GetProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.UUID { return q.productID }

func (q *GetProductQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	q.productID = productID
	return nil
}
