package queries

import (
	"errors"

	"veggo/internal/core/domain/model/order"
	"veggo/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order, optionally narrowed to a single
// status. An empty status means no filter.
type GetAllOrdersQuery struct { //nolint:recvcheck //using for validation
	status string

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a validated order listing request.
func NewGetAllOrdersQuery(status string) (GetAllOrdersQuery, error) {
	q := GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setStatus(status); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) Status() string { return q.status }

func (q *GetAllOrdersQuery) setStatus(status string) error {
	if status != "" {
		if _, err := order.ParseStatus(status); err != nil {
			return err
		}
	}
	q.status = status
	return nil
}
