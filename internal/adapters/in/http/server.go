// Package http exposes the application over REST. Handlers translate
// requests into commands and queries, hand them to the application layer,
// and map domain errors onto HTTP statuses. No business rules live here.
package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/ports"
)

// Sessions stay valid for a day; clients sign in again after that.
const tokenTTL = 24 * time.Hour

// AdminCredentials is the single back office account, configured at startup
// rather than stored in the database.
type AdminCredentials struct {
	Email    string
	Password string
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	VerifyEmail          commands.VerifyEmailCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	ResetPassword        commands.ResetPasswordCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	RegisterAgent        commands.RegisterAgentCommandHandler
	ReportAgentLocation  commands.ReportAgentLocationCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	ApproveAgent         commands.ApproveAgentCommandHandler
	AssignAgent          commands.AssignAgentCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	DeleteProduct        commands.DeleteProductCommandHandler
	SetDeliveryFee       commands.SetDeliveryFeeCommandHandler

	Authenticate        queries.AuthenticateQueryHandler
	GetUserProfile      queries.GetUserProfileQueryHandler
	GetAgentProfile     queries.GetAgentProfileQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetUserOrders       queries.GetUserOrdersQueryHandler
	GetAgentOrders      queries.GetAgentOrdersQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetProducts         queries.GetProductsQueryHandler
	GetProduct          queries.GetProductQueryHandler
	GetCategories       queries.GetCategoriesQueryHandler
	GetAllUsers         queries.GetAllUsersQueryHandler
	GetAllAgents        queries.GetAllAgentsQueryHandler
	GetDashboard        queries.GetDashboardQueryHandler
	GetDeliverySettings queries.GetDeliverySettingsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	issuer   ports.TokenIssuer
	admin    AdminCredentials
	adminID  kernel.UUID
	logger   *slog.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(
	handlers Handlers,
	issuer ports.TokenIssuer,
	admin AdminCredentials,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		issuer:   issuer,
		admin:    admin,
		adminID:  adminActorID(),
		logger:   logger.With("component", "http"),
	}
}

// adminActorID derives a stable identity for back office actions, so audit
// fields reference the same principal across restarts and instances.
func adminActorID() kernel.UUID {
	raw := uuid.NewSHA1(uuid.NameSpaceOID, []byte("veggo/admin"))
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.NewUUID()
	}
	return id
}
