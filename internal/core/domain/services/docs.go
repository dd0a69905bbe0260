// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - StockLedger: validates and prices requested order lines against the catalog
//   - Pricer: resolves the effective fee schedule and computes delivery fees
//
// Domain services coordinate between aggregates, implementing business logic
// that spans bounded contexts following Domain-Driven Design principles.
package services
