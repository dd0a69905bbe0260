package queries

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order view. Customers see only their own
// orders; agents see only orders assigned to them; admins see everything.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorKind string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated order lookup.
// actorKind must be "user", "agent", or "admin".
func NewGetOrderQuery(orderID, actorID kernel.UUID, actorKind string) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setActor(actorID, actorKind),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetOrderQuery) ActorKind() string    { return q.actorKind }

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActor(actorID kernel.UUID, actorKind string) error {
	switch actorKind {
	case "user", "agent":
		if err := actorID.Validate(); err != nil {
			return err
		}
	case "admin":
	default:
		return errs.NewValueIsInvalidError("actorKind")
	}
	q.actorID = actorID
	q.actorKind = actorKind
	return nil
}
