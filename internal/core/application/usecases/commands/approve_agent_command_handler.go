package commands

import (
	"context"
	"time"

	"veggo/internal/core/ports"
)

// ApproveAgentCommandHandler records an admin's approval decision and lets
// the agent know.
type ApproveAgentCommandHandler struct {
	uowFactory AgentUoWFactory
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewApproveAgentCommandHandler creates a handler for approval decisions.
func NewApproveAgentCommandHandler(
	uowFactory AgentUoWFactory,
	notifier ports.NotificationSink,
) ApproveAgentCommandHandler {
	return ApproveAgentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the approval command.
func (h *ApproveAgentCommandHandler) Handle(ctx context.Context, cmd ApproveAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	a.SetApproval(cmd.Approved(), h.now())

	if err = uow.AgentRepository().Update(ctx, a); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.AgentApprovalDecided(ctx, a)
	return nil
}
