// Package product defines the catalog aggregate: products sold by weight
// (Kg), by count (Piece), or both, each with its own price and stock counter.
// The UnitKind enumeration is checked at every boundary so an order item can
// never name anything but Kg or Piece.
package product
