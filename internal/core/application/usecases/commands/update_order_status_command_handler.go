package commands

import (
	"context"
	"time"

	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies order progress updates. Agents may
// only update orders assigned to them; admins may update any order. The
// status machine on the aggregate decides which transitions are legal.
type UpdateOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.NotificationSink,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.ActorKind() == "agent" && !o.IsAssignedTo(cmd.ActorID()) {
		return errs.NewForbiddenError("order is assigned to another agent")
	}

	if err = o.ChangeStatus(cmd.Next(), h.now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	customer, err := uow.UserRepository().Get(ctx, o.UserID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, customer, o)
	return nil
}
