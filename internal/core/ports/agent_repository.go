package ports

import (
	"context"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new agent. Returns errs.ConflictError when the email
	// is already registered.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetByEmail retrieves an agent by login email.
	GetByEmail(ctx context.Context, email string) (*agent.Agent, error)

	// GetAll retrieves every registered agent.
	GetAll(ctx context.Context) ([]*agent.Agent, error)
}
