package product

import (
	"fmt"

	"veggo/internal/pkg/errs"
)

// UnitKind says how a product is sold: by weight, by count, or both.
// It is a tagged enumeration checked at the boundary; any other string is
// rejected as an invalid unit.
type UnitKind string

const (
	// UnitKg sells by weight; quantity and stock are fractional kilograms.
	UnitKg UnitKind = "Kg"
	// UnitPiece sells by count; stock is a whole number of pieces.
	UnitPiece UnitKind = "Piece"
	// UnitBoth sells by weight and by count, with independent prices and stock.
	UnitBoth UnitKind = "Both"
)

// ParseUnitKind validates a product unit kind arriving from the boundary.
func ParseUnitKind(s string) (UnitKind, error) {
	switch UnitKind(s) {
	case UnitKg, UnitPiece, UnitBoth:
		return UnitKind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("unitType",
			fmt.Errorf("%q is not one of Kg, Piece, Both", s))
	}
}

// ParseOrderUnit validates the unit named by an order item. Order items must
// name a concrete unit: Kg or Piece, never Both.
func ParseOrderUnit(s string) (UnitKind, error) {
	switch UnitKind(s) {
	case UnitKg, UnitPiece:
		return UnitKind(s), nil
	default:
		return "", errs.NewStockError(s, errs.ErrInvalidUnit, "unit must be 'Kg' or 'Piece'")
	}
}

// String implements fmt.Stringer.
func (u UnitKind) String() string {
	return string(u)
}

// Validate checks the enum value, for kinds restored from persistence.
func (u UnitKind) Validate() error {
	_, err := ParseUnitKind(string(u))
	return err
}
