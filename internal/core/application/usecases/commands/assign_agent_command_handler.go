package commands

import (
	"context"
	"time"

	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
)

// AssignAgentCommandHandler puts an approved delivery agent on an order.
type AssignAgentCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewAssignAgentCommandHandler creates a handler for order assignment.
func NewAssignAgentCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.NotificationSink,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the assignment command. Only approved agents can be
// assigned; unapproved ones are rejected with a forbidden error.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	assignee, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}
	if !assignee.IsApproved() {
		return errs.NewForbiddenError("agent is not approved for deliveries")
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	customer, err := uow.UserRepository().Get(ctx, o.UserID())
	if err != nil {
		return err
	}

	if err = o.Assign(assignee.ID(), h.now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderAssigned(ctx, customer, o, assignee)
	h.notifier.AgentDispatched(ctx, assignee, o)
	return nil
}
