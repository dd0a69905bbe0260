package commands

import (
	"context"
	"errors"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/core/domain/services"
	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/metrics"
)

// Order numbers are random; on the rare collision the insert is retried
// with a fresh number before giving up.
const orderNumberAttempts = 3

// CreateOrderCommandHandler handles the business logic for order placement.
//
// The flow is: load the requested products, validate and price every line
// through the stock ledger (fail fast, nothing decremented yet), resolve the
// travel distance and the effective fee schedule, persist the order, then
// decrement stock line by line with conditional updates. Everything runs in
// one transaction, so a failed decrement rolls the whole order back.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	distance   ports.DistanceProvider
	notifier   ports.NotificationSink
	ledger     services.StockLedger
	pricer     services.Pricer
	origin     kernel.GeoPoint
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// origin is the store location distances are measured from.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	distance ports.DistanceProvider,
	notifier ports.NotificationSink,
	origin kernel.GeoPoint,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		distance:   distance,
		notifier:   notifier,
		ledger:     services.NewStockLedger(),
		pricer:     services.NewPricer(),
		origin:     origin,
		now:        time.Now,
	}
}

// Handle processes the order placement command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	catalog, err := h.loadCatalog(ctx, uow.ProductRepository(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	items, err := h.ledger.PriceLines(cmd.Lines(), catalog)
	if err != nil {
		return nil, err
	}

	km, _ := h.distance.Distance(ctx, h.origin, cmd.Destination())

	latest, err := uow.FeeScheduleRepository().GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	fee := h.pricer.Quote(h.pricer.Effective(latest), km)

	placed, err := h.persistWithFreshNumber(ctx, uow.OrderRepository(), cmd, items, km, fee)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		err = uow.ProductRepository().DecrementStock(ctx, item.ProductID(), item.Unit(), item.Quantity())
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	h.notifier.OrderConfirmed(ctx, customer, placed)
	return placed, nil
}

func (h *CreateOrderCommandHandler) loadCatalog(
	ctx context.Context,
	repo ports.ProductRepository,
	lines []services.RequestedLine,
) (map[string]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]*product.Product, len(products))
	for _, p := range products {
		catalog[p.ID().String()] = p
	}
	return catalog, nil
}

func (h *CreateOrderCommandHandler) persistWithFreshNumber(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd CreateOrderCommand,
	items []order.Item,
	distanceKm float64,
	deliveryFee float64,
) (*order.Order, error) {
	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		placed, err := order.NewOrder(
			cmd.OrderID(),
			order.GenerateNumber(h.now()),
			cmd.UserID(),
			items,
			cmd.DeliveryAddress(),
			cmd.Destination(),
			cmd.Phone(),
			cmd.Notes(),
			distanceKm,
			deliveryFee,
			h.now(),
		)
		if err != nil {
			return nil, err
		}

		if err = repo.Add(ctx, placed); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return placed, nil
	}
	return nil, lastErr
}
