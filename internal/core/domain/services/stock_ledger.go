package services

import (
	"fmt"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/errs"
)

// RequestedLine is one raw order line as the customer submitted it, before
// the catalog has been consulted.
type RequestedLine struct {
	ProductID kernel.UUID
	Quantity  float64
	Unit      product.UnitKind
}

// StockLedger is a domain service that validates requested order lines
// against the product catalog and turns them into priced order items.
//
// Validation is fail fast: lines are checked in submission order and the
// first violation aborts the whole request, before any stock has been
// touched. For each line the checks run in a fixed sequence:
//   - the product exists
//   - the product is available for ordering
//   - stock on hand covers the requested quantity
//   - the product carries a price for that unit
type StockLedger struct{}

// NewStockLedger creates a new StockLedger instance.
func NewStockLedger() StockLedger {
	return StockLedger{}
}

// PriceLines validates every requested line against the catalog and returns
// priced order items, freezing the unit price each line will be charged at.
// products keys are product identifier strings.
//
// On the first violation it returns the corresponding errs error and no
// items; callers must not have decremented any stock yet.
func (StockLedger) PriceLines(
	lines []RequestedLine,
	products map[string]*product.Product,
) ([]order.Item, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := products[line.ProductID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", line.ProductID)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() {
			return nil, errs.NewStockError(p.Name(), errs.ErrProductUnavailable,
				"product is currently unavailable")
		}

		if p.StockFor(line.Unit) < line.Quantity {
			return nil, errs.NewStockError(p.Name(), errs.ErrInsufficientStock,
				fmt.Sprintf("requested %v %s, only %v in stock",
					line.Quantity, line.Unit, p.StockFor(line.Unit)))
		}

		price, ok := p.PriceFor(line.Unit)
		if !ok {
			return nil, errs.NewStockError(p.Name(), errs.ErrUnitNotSupported,
				fmt.Sprintf("no %s price set for this product", line.Unit))
		}

		item, err := order.NewItem(p.ID(), p.Name(), line.Quantity, line.Unit, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
