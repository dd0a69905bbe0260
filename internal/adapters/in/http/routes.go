package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"veggo/internal/core/ports"
)

// RegisterRoutes wires the REST surface onto the echo instance. The public
// catalog needs no token; everything else is guarded per actor kind.
func RegisterRoutes(e *echo.Echo, s *Server, auth *Authenticator) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// Public catalog.
	api.GET("/products", s.GetProducts)
	api.GET("/product/:id", s.GetProduct)
	api.GET("/categories", s.GetCategories)

	// Customer accounts.
	userGroup := api.Group("/user")
	userGroup.POST("/signup", s.SignupUser)
	userGroup.POST("/login", s.LoginUser)
	userGroup.GET("/verify-email", s.VerifyEmail)
	userGroup.POST("/forgot-password", s.ForgotPassword)
	userGroup.POST("/reset-password", s.ResetPassword)

	userAuthed := api.Group("/user", auth.Require(ports.ActorUser))
	userAuthed.GET("/profile", s.GetUserProfile)
	userAuthed.PUT("/profile/update", s.UpdateUserProfile)
	userAuthed.GET("/orders", s.GetUserOrders)

	// Orders.
	api.POST("/order/create", s.CreateOrder, auth.Require(ports.ActorUser))
	api.GET("/order/:id", s.GetOrder,
		auth.Require(ports.ActorUser, ports.ActorAgent, ports.ActorAdmin))
	api.PUT("/order/cancel/:id", s.CancelOrder,
		auth.Require(ports.ActorUser, ports.ActorAdmin))

	// Delivery agents.
	agentGroup := api.Group("/agent")
	agentGroup.POST("/signup", s.SignupAgent)
	agentGroup.POST("/login", s.LoginAgent)

	agentAuthed := api.Group("/agent", auth.Require(ports.ActorAgent))
	agentAuthed.GET("/profile", s.GetAgentProfile)
	agentAuthed.GET("/orders", s.GetAgentOrders)
	agentAuthed.PUT("/update-location", s.UpdateAgentLocation)
	agentAuthed.PUT("/order-status/:id", s.UpdateAgentOrderStatus)

	// Back office.
	api.POST("/admin/login", s.LoginAdmin)

	admin := api.Group("/admin", auth.Require(ports.ActorAdmin))
	admin.GET("/dashboard", s.GetDashboard)
	admin.GET("/users", s.GetUsers)
	admin.GET("/agents", s.GetAgents)
	admin.PUT("/agent/approve/:id", s.ApproveAgent)
	admin.POST("/product/add", s.AddProduct)
	admin.PUT("/product/update/:id", s.UpdateProduct)
	admin.DELETE("/product/delete/:id", s.DeleteProduct)
	admin.GET("/orders", s.GetAllOrders)
	admin.PUT("/order/status/:id", s.UpdateOrderStatus)
	admin.PUT("/order/assign-agent/:id", s.AssignAgent)
	admin.GET("/delivery-settings", s.GetDeliverySettings)
	admin.PUT("/delivery-settings", s.SetDeliverySettings)
}
