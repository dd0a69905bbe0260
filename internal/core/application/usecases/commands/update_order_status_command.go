package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a progress update on an order, issued
// either by an admin or by the agent the order is assigned to. Cancellation
// is not a status update and has its own command.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	next      order.Status
	actorID   kernel.UUID
	actorKind string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status update command.
// actorKind must be "agent" or "admin"; raw is the requested status string.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	raw string,
	actorID kernel.UUID,
	actorKind string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(raw),
		cmd.setActor(actorID, actorKind),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Next() order.Status   { return c.next }
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }
func (c UpdateOrderStatusCommand) ActorKind() string    { return c.actorKind }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNext(raw string) error {
	next, err := order.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.next = next
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actorID kernel.UUID, actorKind string) error {
	if actorKind != "agent" && actorKind != "admin" {
		return errs.NewValueIsInvalidError("actorKind")
	}
	if actorKind == "agent" {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}
	c.actorID = actorID
	c.actorKind = actorKind
	return nil
}
