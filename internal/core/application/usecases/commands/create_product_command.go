package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an admin adding a product to the catalog.
// Price and stock invariants per unit kind are enforced by the aggregate
// when the handler constructs it.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	imageURL      string
	unitKind      product.UnitKind
	pricePerKg    *float64
	pricePerPiece *float64
	stockKg       float64
	stockPieces   int
	category      string
	isAvailable   bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a validated catalog addition command.
// rawUnit is the requested unit kind string (Kg, Piece, or Both).
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	imageURL string,
	rawUnit string,
	pricePerKg *float64,
	pricePerPiece *float64,
	stockKg float64,
	stockPieces int,
	category string,
	isAvailable bool,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:          name,
		imageURL:      imageURL,
		pricePerKg:    pricePerKg,
		pricePerPiece: pricePerPiece,
		stockKg:       stockKg,
		stockPieces:   stockPieces,
		category:      category,
		isAvailable:   isAvailable,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setUnitKind(rawUnit),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID     { return c.productID }
func (c CreateProductCommand) Name() string               { return c.name }
func (c CreateProductCommand) ImageURL() string           { return c.imageURL }
func (c CreateProductCommand) UnitKind() product.UnitKind { return c.unitKind }
func (c CreateProductCommand) PricePerKg() *float64       { return c.pricePerKg }
func (c CreateProductCommand) PricePerPiece() *float64    { return c.pricePerPiece }
func (c CreateProductCommand) StockKg() float64           { return c.stockKg }
func (c CreateProductCommand) StockPieces() int           { return c.stockPieces }
func (c CreateProductCommand) Category() string           { return c.category }
func (c CreateProductCommand) IsAvailable() bool          { return c.isAvailable }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setUnitKind(raw string) error {
	kind, err := product.ParseUnitKind(raw)
	if err != nil {
		return err
	}
	c.unitKind = kind
	return nil
}
