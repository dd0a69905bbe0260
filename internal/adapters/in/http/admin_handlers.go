package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/core/ports"
)

// LoginAdmin handles POST /api/admin/login. The admin account is configured
// at startup; credentials are compared in constant time.
func (s *Server) LoginAdmin(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.Password))
	if emailOK&passwordOK != 1 {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "unknown email or wrong password",
		})
	}

	token, err := s.issuer.Issue(s.adminID.String(), ports.ActorAdmin, tokenTTL)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: token,
		ID:    s.adminID.String(),
		Name:  "admin",
		Kind:  string(ports.ActorAdmin),
	})
}

// GetDashboard handles GET /api/admin/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query, err := queries.NewGetDashboardQuery()
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetUsers handles GET /api/admin/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	query, err := queries.NewGetAllUsersQuery()
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetAllUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetAgents handles GET /api/admin/agents.
func (s *Server) GetAgents(ctx echo.Context) error {
	query, err := queries.NewGetAllAgentsQuery()
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetAllAgents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// ApproveAgent handles PUT /api/admin/agent/approve/:id.
func (s *Server) ApproveAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid agent id")
	}

	var req approveAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewApproveAgentCommand(agentID, req.Approved)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ApproveAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "approval updated"})
}

// AddProduct handles POST /api/admin/product/add.
func (s *Server) AddProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		req.Name,
		req.ImageURL,
		req.UnitType,
		req.PricePerKg,
		req.PricePerPiece,
		req.StockKg,
		req.StockPieces,
		req.Category,
		req.IsAvailable,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, view)
}

// UpdateProduct handles PUT /api/admin/product/update/:id. Only the fields
// present in the body are touched.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req productUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	update := product.Update{
		Name:          req.Name,
		ImageURL:      req.ImageURL,
		PricePerKg:    req.PricePerKg,
		PricePerPiece: req.PricePerPiece,
		StockKg:       req.StockKg,
		StockPieces:   req.StockPieces,
		Category:      req.Category,
		IsAvailable:   req.IsAvailable,
	}
	if req.UnitType != nil {
		unit, unitErr := product.ParseUnitKind(*req.UnitType)
		if unitErr != nil {
			return s.writeError(ctx, unitErr)
		}
		update.UnitKind = &unit
	}

	cmd, err := commands.NewUpdateProductCommand(productID, update)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// DeleteProduct handles DELETE /api/admin/product/delete/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

// GetAllOrders handles GET /api/admin/orders. Supports ?status= filtering.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// UpdateOrderStatus handles PUT /api/admin/order/status/:id.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status, s.adminID, actorKind(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order status updated"})
}

// AssignAgent handles PUT /api/admin/order/assign-agent/:id.
func (s *Server) AssignAgent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req assignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "invalid agent id")
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AssignAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "agent assigned"})
}

// GetDeliverySettings handles GET /api/admin/delivery-settings.
func (s *Server) GetDeliverySettings(ctx echo.Context) error {
	query, err := queries.NewGetDeliverySettingsQuery()
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetDeliverySettings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// SetDeliverySettings handles PUT /api/admin/delivery-settings. The fee
// schedule is append-only; each call records a new row.
func (s *Server) SetDeliverySettings(ctx echo.Context) error {
	var req deliverySettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetDeliveryFeeCommand(req.BaseFee, req.PerKmRate, req.PerMeterRate, s.admin.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.SetDeliveryFee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDeliverySettingsQuery()
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetDeliverySettings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}
