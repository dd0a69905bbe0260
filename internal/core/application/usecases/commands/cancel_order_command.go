package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order. Actor names
// who asked: the order's owner or an admin. Owners are bound by the cancel
// window; admins are not.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorKind string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a validated cancellation command.
// actorKind must be "user" or "admin".
func NewCancelOrderCommand(orderID, actorID kernel.UUID, actorKind string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, actorKind),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c CancelOrderCommand) ActorKind() string    { return c.actorKind }

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(actorID kernel.UUID, actorKind string) error {
	if actorKind != "user" && actorKind != "admin" {
		return errs.NewValueIsInvalidError("actorKind")
	}
	if actorKind == "user" {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}
	c.actorID = actorID
	c.actorKind = actorKind
	return nil
}
