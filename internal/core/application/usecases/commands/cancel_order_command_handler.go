package commands

import (
	"context"
	"math"
	"time"

	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/metrics"
)

// CancelOrderCommandHandler cancels an order and restores the stock its
// lines had reserved. Owners may cancel their own pending or confirmed
// orders within the cancel window; admins may cancel any cancellable order
// regardless of how long ago it was placed.
type CancelOrderCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	notifier     ports.NotificationSink
	cancelWindow time.Duration
	now          func() time.Time
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	notifier ports.NotificationSink,
	cancelWindow time.Duration,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		notifier:     notifier,
		cancelWindow: cancelWindow,
		now:          time.Now,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	window := h.cancelWindow
	if cmd.ActorKind() == "admin" {
		window = time.Duration(math.MaxInt64)
	} else if !o.UserID().IsEqual(cmd.ActorID()) {
		return errs.NewForbiddenError("order belongs to another customer")
	}

	if err = o.Cancel(cmd.ActorKind(), window, h.now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	for _, item := range o.Items() {
		err = uow.ProductRepository().RestoreStock(ctx, item.ProductID(), item.Unit(), item.Quantity())
		if err != nil {
			return err
		}
	}

	customer, err := uow.UserRepository().Get(ctx, o.UserID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCancelled.WithLabelValues(cmd.ActorKind()).Inc()
	h.notifier.OrderCancelled(ctx, customer, o)
	return nil
}
