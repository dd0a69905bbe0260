package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "veggo/internal/adapters/in/http"
	"veggo/internal/adapters/out/geo"
	"veggo/internal/adapters/out/postgres"
	"veggo/internal/adapters/out/postgres/agentrepo"
	"veggo/internal/adapters/out/postgres/feeschedulerepo"
	"veggo/internal/adapters/out/postgres/orderrepo"
	"veggo/internal/adapters/out/postgres/productrepo"
	"veggo/internal/adapters/out/postgres/userrepo"
	"veggo/internal/adapters/out/smtpmail"
	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/ports"
	"veggo/internal/jobs"
	"veggo/internal/pkg/token"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	issuer     *token.Issuer
	hasher     token.BcryptHasher
	distance   ports.DistanceProvider
	notifier   ports.NotificationSink
	origin     kernel.GeoPoint
	logger     *slog.Logger
}

// NewCompositionRoot builds the shared collaborators once; handler
// factories hand out fresh handlers over them.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	issuer, err := token.NewIssuer(config.TokenSecret)
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewGeoPoint(config.StoreLat, config.StoreLng)
	if err != nil {
		return nil, err
	}

	notifier := smtpSink(config, logger)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		issuer:     issuer,
		hasher:     token.NewBcryptHasher(),
		distance:   geo.NewRouterClient(config.RoutingBaseURL, logger),
		notifier:   notifier,
		origin:     origin,
		logger:     logger,
	}, nil
}

func smtpSink(config Config, logger *slog.Logger) ports.NotificationSink {
	return smtpmail.NewSink(smtpmail.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		From:     config.SMTPFrom,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		BaseURL:  config.PublicBaseURL,
	}, logger)
}

// AutoMigrate creates or updates the schema for every persisted aggregate.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&agentrepo.AgentDTO{},
		&userrepo.UserDTO{},
		&feeschedulerepo.FeeScheduleDTO{},
	)
}

func (c *CompositionRoot) cancelWindow() time.Duration {
	return time.Duration(c.config.CancelWindowMinutes) * time.Minute
}

// TokenIssuer exposes the shared issuer for the HTTP authenticator.
func (c *CompositionRoot) TokenIssuer() ports.TokenIssuer {
	return c.issuer
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher, c.notifier)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyEmailCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPasswordResetCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetPasswordCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreatePurgeResetTokensCommandHandler() commands.PurgeResetTokensCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeResetTokensCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.distance, c.notifier, c.origin)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.cancelWindow())
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateReportAgentLocationCommandHandler() commands.ReportAgentLocationCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportAgentLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveAgentCommandHandler() commands.ApproveAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveAgentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDeliveryFeeCommandHandler() commands.SetDeliveryFeeCommandHandler {
	var f commands.FeeScheduleUoWFactory = FuncFeeScheduleUoWFactory(func() commands.FeeScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDeliveryFeeCommandHandler(f)
}

// HTTPHandlers assembles the full handler bundle for the REST server.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		VerifyEmail:          c.CreateVerifyEmailCommandHandler(),
		UpdateProfile:        c.CreateUpdateProfileCommandHandler(),
		RequestPasswordReset: c.CreateRequestPasswordResetCommandHandler(),
		ResetPassword:        c.CreateResetPasswordCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		RegisterAgent:        c.CreateRegisterAgentCommandHandler(),
		ReportAgentLocation:  c.CreateReportAgentLocationCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		ApproveAgent:         c.CreateApproveAgentCommandHandler(),
		AssignAgent:          c.CreateAssignAgentCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		UpdateProduct:        c.CreateUpdateProductCommandHandler(),
		DeleteProduct:        c.CreateDeleteProductCommandHandler(),
		SetDeliveryFee:       c.CreateSetDeliveryFeeCommandHandler(),

		Authenticate:        queries.NewAuthenticateQueryHandler(c.gormDB, c.hasher),
		GetUserProfile:      queries.NewGetUserProfileQueryHandler(c.gormDB),
		GetAgentProfile:     queries.NewGetAgentProfileQueryHandler(c.gormDB),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB, c.cancelWindow()),
		GetUserOrders:       queries.NewGetUserOrdersQueryHandler(c.gormDB, c.cancelWindow()),
		GetAgentOrders:      queries.NewGetAgentOrdersQueryHandler(c.gormDB, c.cancelWindow()),
		GetAllOrders:        queries.NewGetAllOrdersQueryHandler(c.gormDB, c.cancelWindow()),
		GetProducts:         queries.NewGetProductsQueryHandler(c.gormDB),
		GetProduct:          queries.NewGetProductQueryHandler(c.gormDB),
		GetCategories:       queries.NewGetCategoriesQueryHandler(c.gormDB),
		GetAllUsers:         queries.NewGetAllUsersQueryHandler(c.gormDB),
		GetAllAgents:        queries.NewGetAllAgentsQueryHandler(c.gormDB),
		GetDashboard:        queries.NewGetDashboardQueryHandler(c.gormDB),
		GetDeliverySettings: queries.NewGetDeliverySettingsQueryHandler(c.gormDB),
	}
}

// JobManager wires the background jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeResetTokensCommandHandler(), c.logger)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncFeeScheduleUoWFactory func() commands.FeeScheduleUoW

func (f FuncFeeScheduleUoWFactory) Create() commands.FeeScheduleUoW {
	return f()
}
