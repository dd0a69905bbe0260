// Package order defines the order aggregate and its lifecycle state machine.
// An order is created pending with a frozen pricing breakdown, may be
// confirmed and assigned to an agent, progresses through delivery statuses,
// and may be cancelled by its owner within a configurable window while still
// pending or confirmed.
package order
