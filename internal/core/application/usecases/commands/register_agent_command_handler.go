package commands

import (
	"context"
	"time"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/ports"
)

// RegisterAgentCommandHandler creates a delivery agent account in the
// unapproved state.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
	hasher     ports.PasswordHasher
	now        func() time.Time
}

// NewRegisterAgentCommandHandler creates a handler for agent signup.
func NewRegisterAgentCommandHandler(
	uowFactory AgentUoWFactory,
	hasher ports.PasswordHasher,
) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		now:        time.Now,
	}
}

// Handle processes the agent signup command and returns the created agent.
func (h *RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	a, err := agent.NewAgent(
		cmd.AgentID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		hash,
		cmd.Vehicle(),
		cmd.LicenseNumber(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
