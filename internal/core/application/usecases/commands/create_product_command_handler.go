package commands

import (
	"context"
	"time"

	"veggo/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a product to the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the catalog addition command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.ImageURL(),
		cmd.UnitKind(),
		cmd.PricePerKg(),
		cmd.PricePerPiece(),
		cmd.StockKg(),
		cmd.StockPieces(),
		cmd.Category(),
		cmd.IsAvailable(),
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

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
