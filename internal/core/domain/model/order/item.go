package order

import (
	"errors"
	"fmt"
	"math"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item bypassed NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product reference, the quantity and unit
// chosen at order time, and the unit price captured when the order was
// placed. The line total is frozen at creation; later product price changes
// never retroactively affect placed orders.
type Item struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	productName  string
	quantity     float64
	unit         product.UnitKind
	pricePerUnit float64
	total        float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line. The unit must be a concrete order
// unit (Kg or Piece), quantities must be positive, and Piece quantities must
// be whole numbers. The total is computed as quantity × unit price.
func NewItem(
	productID kernel.UUID,
	productName string,
	quantity float64,
	unit product.UnitKind,
	pricePerUnit float64,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnit(unit),
		item.setQuantity(quantity, unit),
		item.setPrice(pricePerUnit),
	); err != nil {
		return Item{}, err
	}

	item.total = item.quantity * item.pricePerUnit
	return item, nil
}

// RestoreItem rehydrates a line from persistence, keeping the stored frozen
// total instead of recomputing it.
func RestoreItem(
	productID kernel.UUID,
	productName string,
	quantity float64,
	unit product.UnitKind,
	pricePerUnit float64,
	total float64,
) (Item, error) {
	item, err := NewItem(productID, productName, quantity, unit, pricePerUnit)
	if err != nil {
		return Item{}, err
	}
	item.total = total
	return item, nil
}

// Validate checks that the item was produced by a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID { return i.productID }
func (i Item) ProductName() string    { return i.productName }
func (i Item) Quantity() float64      { return i.quantity }
func (i Item) Unit() product.UnitKind { return i.unit }
func (i Item) PricePerUnit() float64  { return i.pricePerUnit }
func (i Item) Total() float64         { return i.total }

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setUnit(unit product.UnitKind) error {
	if _, err := product.ParseOrderUnit(string(unit)); err != nil {
		return err
	}
	i.unit = unit
	return nil
}

func (i *Item) setQuantity(quantity float64, unit product.UnitKind) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%g is not greater than 0", quantity))
	}
	if unit == product.UnitPiece && quantity != math.Trunc(quantity) {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%g pieces is not a whole number", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerUnit",
			fmt.Errorf("%g is negative", price))
	}
	i.pricePerUnit = price
	return nil
}
