// Package kernel contains shared domain primitives: entity identifiers,
// geographic coordinates with the pure haversine distance, and monetary
// rounding. These value objects are used across all aggregates and carry no
// dependencies on other domain packages.
package kernel
