// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"veggo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each composed UoW names exactly the repositories its commands
// touch, so tests can mock the narrowest surface.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// FeeScheduleRepoFactory provides access to the fee schedule log within a transaction.
	FeeScheduleRepoFactory interface {
		FeeScheduleRepository() ports.FeeScheduleRepository
	}

	// CheckoutUoW manages transactions for order placement and cancellation.
	// These operations span the order, the catalog stock, the customer, and
	// the fee schedule log.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		UserRepoFactory
		FeeScheduleRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// DispatchUoW manages transactions for order assignment and status
	// changes, which touch orders, agents, and the customer to notify.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		UserRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// AgentUoW manages transactions for agent-only operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// UserUoW manages transactions for customer-account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// FeeScheduleUoW manages transactions for fee schedule writes.
	FeeScheduleUoW interface {
		TxManager
		FeeScheduleRepoFactory
	}

	// FeeScheduleUoWFactory creates new fee schedule unit of work instances.
	FeeScheduleUoWFactory interface {
		Create() FeeScheduleUoW
	}
)
