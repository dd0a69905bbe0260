package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an admin's partial edit of a catalog
// product. Only the non-nil fields of the update are applied.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	update    product.Update

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a validated catalog edit command.
func NewUpdateProductCommand(productID kernel.UUID, update product.Update) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c UpdateProductCommand) Update() product.Update { return c.update }

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
