package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/pricing"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/core/ports"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAll(ctx context.Context, category string) ([]*product.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, unit product.UnitKind, quantity float64) error {
	return m.Called(ctx, id, unit, quantity).Error(0)
}
func (m *MockProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, unit product.UnitKind, quantity float64) error {
	return m.Called(ctx, id, unit, quantity).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByAgent(ctx context.Context, agentID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAll(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}
func (m *MockAgentRepository) GetByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}
func (m *MockAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByResetToken(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*user.User), args.Error(1)
}
func (m *MockUserRepository) PurgeExpiredResetTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockFeeScheduleRepository struct{ mock.Mock }

func (m *MockFeeScheduleRepository) Append(ctx context.Context, s pricing.FeeSchedule) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockFeeScheduleRepository) GetLatest(ctx context.Context) (*pricing.FeeSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FeeSchedule), args.Error(1)
}
func (m *MockFeeScheduleRepository) GetHistory(ctx context.Context) ([]pricing.FeeSchedule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]pricing.FeeSchedule), args.Error(1)
}

// MockCheckoutUoW wires every repository of the checkout transaction to the
// same mock instance set.
type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockCheckoutUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockCheckoutUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}
func (m *MockCheckoutUoW) FeeScheduleRepository() ports.FeeScheduleRepository {
	return m.Called().Get(0).(ports.FeeScheduleRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockDispatchUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockDispatchUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockDispatchUoW) AgentRepository() ports.AgentRepository {
	return m.Called().Get(0).(ports.AgentRepository)
}
func (m *MockDispatchUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	return m.Called().Get(0).(commands.DispatchUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUserUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUserUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUserUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockAgentUoW struct{ mock.Mock }

func (m *MockAgentUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockAgentUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockAgentUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockAgentUoW) AgentRepository() ports.AgentRepository {
	return m.Called().Get(0).(ports.AgentRepository)
}

type MockAgentUoWFactory struct{ mock.Mock }

func (m *MockAgentUoWFactory) Create() commands.AgentUoW {
	return m.Called().Get(0).(commands.AgentUoW)
}

type MockDistanceProvider struct{ mock.Mock }

func (m *MockDistanceProvider) Distance(ctx context.Context, origin, destination kernel.GeoPoint) (float64, float64) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(float64), args.Get(1).(float64)
}

// MockNotificationSink records fire-and-forget notification calls.
type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) OrderConfirmed(ctx context.Context, recipient *user.User, o *order.Order) {
	m.Called(ctx, recipient, o)
}
func (m *MockNotificationSink) OrderStatusChanged(ctx context.Context, recipient *user.User, o *order.Order) {
	m.Called(ctx, recipient, o)
}
func (m *MockNotificationSink) OrderCancelled(ctx context.Context, recipient *user.User, o *order.Order) {
	m.Called(ctx, recipient, o)
}
func (m *MockNotificationSink) OrderAssigned(ctx context.Context, recipient *user.User, o *order.Order, assignee *agent.Agent) {
	m.Called(ctx, recipient, o, assignee)
}
func (m *MockNotificationSink) AgentDispatched(ctx context.Context, assignee *agent.Agent, o *order.Order) {
	m.Called(ctx, assignee, o)
}
func (m *MockNotificationSink) AgentApprovalDecided(ctx context.Context, recipient *agent.Agent) {
	m.Called(ctx, recipient)
}
func (m *MockNotificationSink) VerificationRequested(ctx context.Context, recipient *user.User, token string) {
	m.Called(ctx, recipient, token)
}
func (m *MockNotificationSink) PasswordResetRequested(ctx context.Context, recipient *user.User, token string) {
	m.Called(ctx, recipient, token)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Verify(hash, plain string) bool {
	return m.Called(hash, plain).Bool(0)
}
