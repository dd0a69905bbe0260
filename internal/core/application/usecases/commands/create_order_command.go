package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/services"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place an order.
// It carries the raw requested lines together with the delivery details;
// pricing and stock checks happen in the handler against the catalog.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	lines           []services.RequestedLine
	deliveryAddress string
	destination     kernel.GeoPoint
	phone           string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order placement command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	lines []services.RequestedLine,
	deliveryAddress string,
	destination kernel.GeoPoint,
	phone string,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setLines(lines),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setDestination(destination),
		cmd.setPhone(phone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID            { return c.orderID }
func (c CreateOrderCommand) UserID() kernel.UUID             { return c.userID }
func (c CreateOrderCommand) Lines() []services.RequestedLine { return c.lines }
func (c CreateOrderCommand) DeliveryAddress() string         { return c.deliveryAddress }
func (c CreateOrderCommand) Destination() kernel.GeoPoint    { return c.destination }
func (c CreateOrderCommand) Phone() string                   { return c.phone }
func (c CreateOrderCommand) Notes() string                   { return c.notes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
