package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/core/domain/services"
)

// CreateOrder handles POST /api/order/create.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	lines := make([]services.RequestedLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "invalid product id: "+item.ProductID)
		}
		unit, unitErr := product.ParseOrderUnit(item.Unit)
		if unitErr != nil {
			return s.writeError(ctx, unitErr)
		}
		lines = append(lines, services.RequestedLine{
			ProductID: productID,
			Quantity:  item.Quantity,
			Unit:      unit,
		})
	}

	destination, err := kernel.NewGeoPoint(req.DestLat, req.DestLng)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		userID,
		lines,
		req.DeliveryAddress,
		destination,
		req.Phone,
		req.Notes,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.loadOrderView(ctx, created.ID(), userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, view)
}

// GetOrder handles GET /api/order/:id. Customers see only their own
// orders; agents only orders assigned to them; admins see everything.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	actorID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID, actorKind(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// CancelOrder handles PUT /api/order/cancel/:id.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	actorID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, actorKind(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order cancelled"})
}

// GetUserOrders handles GET /api/user/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

func (s *Server) loadOrderView(ctx echo.Context, orderID, actorID kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(orderID, actorID, actorKind(ctx))
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
}
