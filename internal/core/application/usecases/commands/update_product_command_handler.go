package commands

import (
	"context"
	"time"
)

// UpdateProductCommandHandler applies a partial edit to a catalog product.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the catalog edit command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.Apply(cmd.Update(), h.now()); err != nil {
		return err
	}

	if err = uow.ProductRepository().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
