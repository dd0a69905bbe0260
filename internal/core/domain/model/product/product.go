package product

import (
	"errors"
	"fmt"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created via
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the catalog aggregate. A product sold in Kg must carry a
// non-nil price per Kg, one sold in Piece a non-nil price per piece, and
// Both requires both prices. Stock is tracked separately per unit kind:
// fractional kilograms and whole pieces.
type Product struct {
	id            kernel.UUID
	name          string
	imageURL      string
	unitKind      UnitKind
	pricePerKg    *float64
	pricePerPiece *float64
	stockKg       float64
	stockPieces   int
	category      string
	isAvailable   bool
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewProduct creates a validated product.
func NewProduct(
	id kernel.UUID,
	name string,
	imageURL string,
	unitKind UnitKind,
	pricePerKg *float64,
	pricePerPiece *float64,
	stockKg float64,
	stockPieces int,
	category string,
	isAvailable bool,
	now time.Time,
) (*Product, error) {
	p := &Product{
		imageURL:      imageURL,
		pricePerKg:    pricePerKg,
		pricePerPiece: pricePerPiece,
		isAvailable:   isAvailable,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitKind(unitKind),
		p.setCategory(category),
		p.setStock(stockKg, stockPieces),
	); err != nil {
		return nil, err
	}

	if err := p.validatePrices(); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rehydrates a product from persistence without re-running
// creation-time timestamping.
func RestoreProduct(
	id kernel.UUID,
	name string,
	imageURL string,
	unitKind UnitKind,
	pricePerKg *float64,
	pricePerPiece *float64,
	stockKg float64,
	stockPieces int,
	category string,
	isAvailable bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, imageURL, unitKind, pricePerKg, pricePerPiece,
		stockKg, stockPieces, category, isAvailable, createdAt)
	if err != nil {
		return nil, err
	}
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the product was created via a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID         { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) ImageURL() string        { return p.imageURL }
func (p *Product) Kind() UnitKind          { return p.unitKind }
func (p *Product) PricePerKg() *float64    { return p.pricePerKg }
func (p *Product) PricePerPiece() *float64 { return p.pricePerPiece }
func (p *Product) StockKg() float64        { return p.stockKg }
func (p *Product) StockPieces() int        { return p.stockPieces }
func (p *Product) Category() string        { return p.category }
func (p *Product) IsAvailable() bool       { return p.isAvailable }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }

// PriceFor returns the unit price for a concrete order unit, or false when
// the product carries no price for that unit.
func (p *Product) PriceFor(unit UnitKind) (float64, bool) {
	switch unit {
	case UnitKg:
		if p.pricePerKg == nil {
			return 0, false
		}
		return *p.pricePerKg, true
	case UnitPiece:
		if p.pricePerPiece == nil {
			return 0, false
		}
		return *p.pricePerPiece, true
	default:
		return 0, false
	}
}

// StockFor returns the stock on hand for a concrete order unit.
func (p *Product) StockFor(unit UnitKind) float64 {
	switch unit {
	case UnitKg:
		return p.stockKg
	case UnitPiece:
		return float64(p.stockPieces)
	default:
		return 0
	}
}

// InStock derives catalog stock status from the unit kind: Both counts as in
// stock when either unit has stock remaining.
func (p *Product) InStock() bool {
	switch p.unitKind {
	case UnitKg:
		return p.stockKg > 0
	case UnitPiece:
		return p.stockPieces > 0
	default:
		return p.stockKg > 0 || p.stockPieces > 0
	}
}

// Update carries optional field changes from an admin edit. Nil fields are
// left untouched.
type Update struct {
	Name          *string
	ImageURL      *string
	UnitKind      *UnitKind
	PricePerKg    *float64
	PricePerPiece *float64
	StockKg       *float64
	StockPieces   *int
	Category      *string
	IsAvailable   *bool
}

// Apply mutates the product with the non-nil fields of the update and
// re-checks the price invariant for the (possibly new) unit kind.
func (p *Product) Apply(u Update, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if u.Name != nil {
		if err := p.setName(*u.Name); err != nil {
			return err
		}
	}
	if u.ImageURL != nil {
		p.imageURL = *u.ImageURL
	}
	if u.UnitKind != nil {
		if err := p.setUnitKind(*u.UnitKind); err != nil {
			return err
		}
	}
	if u.PricePerKg != nil {
		p.pricePerKg = u.PricePerKg
	}
	if u.PricePerPiece != nil {
		p.pricePerPiece = u.PricePerPiece
	}
	stockKg, stockPieces := p.stockKg, p.stockPieces
	if u.StockKg != nil {
		stockKg = *u.StockKg
	}
	if u.StockPieces != nil {
		stockPieces = *u.StockPieces
	}
	if err := p.setStock(stockKg, stockPieces); err != nil {
		return err
	}
	if u.Category != nil {
		if err := p.setCategory(*u.Category); err != nil {
			return err
		}
	}
	if u.IsAvailable != nil {
		p.isAvailable = *u.IsAvailable
	}

	if err := p.validatePrices(); err != nil {
		return err
	}

	p.updatedAt = now
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitKind(kind UnitKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.unitKind = kind
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setStock(stockKg float64, stockPieces int) error {
	if stockKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockKg",
			fmt.Errorf("%g is negative", stockKg))
	}
	if stockPieces < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockPieces",
			fmt.Errorf("%d is negative", stockPieces))
	}
	p.stockKg = stockKg
	p.stockPieces = stockPieces
	return nil
}

// validatePrices enforces the per-unit price invariant for the current kind.
func (p *Product) validatePrices() error {
	switch p.unitKind {
	case UnitKg:
		if p.pricePerKg == nil {
			return errs.NewValueIsRequiredError("pricePerKg")
		}
	case UnitPiece:
		if p.pricePerPiece == nil {
			return errs.NewValueIsRequiredError("pricePerPiece")
		}
	case UnitBoth:
		if p.pricePerKg == nil {
			return errs.NewValueIsRequiredError("pricePerKg")
		}
		if p.pricePerPiece == nil {
			return errs.NewValueIsRequiredError("pricePerPiece")
		}
	}

	if p.pricePerKg != nil && *p.pricePerKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerKg",
			fmt.Errorf("%g is negative", *p.pricePerKg))
	}
	if p.pricePerPiece != nil && *p.pricePerPiece < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerPiece",
			fmt.Errorf("%g is negative", *p.pricePerPiece))
	}
	return nil
}
