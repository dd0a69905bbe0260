package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/ports"
)

// SignupAgent handles POST /api/agent/signup. New agents start out
// unapproved and cannot sign in until an admin approves them.
func (s *Server) SignupAgent(ctx echo.Context) error {
	var req signupAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterAgentCommand(
		kernel.NewUUID(),
		req.Name,
		req.Email,
		req.Password,
		req.Phone,
		req.Vehicle,
		req.LicenseNumber,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.RegisterAgent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, agentProfileResponse(created))
}

// LoginAgent handles POST /api/agent/login.
func (s *Server) LoginAgent(ctx echo.Context) error {
	return s.login(ctx, ports.ActorAgent)
}

// GetAgentProfile handles GET /api/agent/profile.
func (s *Server) GetAgentProfile(ctx echo.Context) error {
	agentID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetAgentProfileQuery(agentID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetAgentProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetAgentOrders handles GET /api/agent/orders.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	agentID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetAgentOrdersQuery(agentID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetAgentOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// UpdateAgentLocation handles PUT /api/agent/update-location.
func (s *Server) UpdateAgentLocation(ctx echo.Context) error {
	agentID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req updateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewReportAgentLocationCommand(agentID, point)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ReportAgentLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "location updated"})
}

// UpdateAgentOrderStatus handles PUT /api/agent/order-status/:id. Agents
// may only move orders that are assigned to them.
func (s *Server) UpdateAgentOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	agentID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status, agentID, actorKind(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order status updated"})
}

// agentProfileResponse shapes a freshly created agent like the profile
// read model.
func agentProfileResponse(a *agent.Agent) queries.AgentView {
	view := queries.AgentView{
		ID:            a.ID().String(),
		Name:          a.Name(),
		Email:         a.Email(),
		Phone:         a.Phone(),
		Vehicle:       string(a.Vehicle()),
		LicenseNumber: a.LicenseNumber(),
		Approved:      a.IsApproved(),
		CreatedAt:     a.CreatedAt(),
	}
	if loc := a.Location(); loc != nil {
		lat, lng := loc.Point.Lat(), loc.Point.Lng()
		reportedAt := loc.ReportedAt
		view.LocLat = &lat
		view.LocLng = &lng
		view.LocReportedAt = &reportedAt
	}
	return view
}
