package commands

import (
	"context"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/pricing"
)

// SetDeliveryFeeCommandHandler appends a new row to the fee schedule log.
type SetDeliveryFeeCommandHandler struct {
	uowFactory FeeScheduleUoWFactory
	now        func() time.Time
}

// NewSetDeliveryFeeCommandHandler creates a handler for rate publications.
func NewSetDeliveryFeeCommandHandler(uowFactory FeeScheduleUoWFactory) SetDeliveryFeeCommandHandler {
	return SetDeliveryFeeCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the rate publication command.
func (h *SetDeliveryFeeCommandHandler) Handle(ctx context.Context, cmd SetDeliveryFeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	schedule, err := pricing.NewFeeSchedule(
		kernel.NewUUID(),
		cmd.BaseFee(),
		cmd.PerKmRate(),
		cmd.PerMeterRate(),
		cmd.SetBy(),
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FeeScheduleRepository().Append(ctx, schedule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
