package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"veggo/internal/adapters/out/postgres/orderrepo"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndLines() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("VG20260314000001", kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderItemDTO{}, 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.newTestOrder("VG20260314000002", kernel.NewUUID())
	second := suite.newTestOrder("VG20260314000002", kernel.NewUUID())
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	original := suite.newTestOrder("VG20260314000003", userID)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("VG20260314000003", retrieved.Number())
	suite.Equal(userID, retrieved.UserID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.InDelta(original.Subtotal(), retrieved.Subtotal(), 0.001)
	suite.InDelta(original.DeliveryFee(), retrieved.DeliveryFee(), 0.001)
	suite.InDelta(original.FinalPrice(), retrieved.FinalPrice(), 0.001)
	suite.Equal(original.DeliveryAddress(), retrieved.DeliveryAddress())
	suite.Nil(retrieved.Agent())

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Tomato", items[0].ProductName())
	suite.Equal(product.UnitKg, items[0].Unit())
	suite.Equal("Cucumber", items[1].ProductName())
	suite.Equal(product.UnitPiece, items[1].Unit())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancellation_PersistsStatusAndActor() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("VG20260314000004", kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Cancel("user", 5*time.Minute, testOrder.CreatedAt().Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Equal("user", retrieved.CancelledBy())
	suite.NotNil(retrieved.CancelledAt())
	suite.Len(retrieved.Items(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("VG20260314000005", kernel.NewUUID())

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByUser_ReturnsOnlyOwnOrders() {
	ctx := context.Background()

	owner := kernel.NewUUID()
	other := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newTestOrder("VG20260314000006", owner)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTestOrder("VG20260314000007", owner)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTestOrder("VG20260314000008", other)))

	orders, err := suite.repository.GetByUser(ctx, owner)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Equal(owner, o.UserID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_StatusFilter() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	pendingOrder := suite.newTestOrder("VG20260314000009", kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))

	cancelledOrder := suite.newTestOrder("VG20260314000010", kernel.NewUUID())
	suite.Require().NoError(cancelledOrder.Cancel("admin", time.Hour, cancelledOrder.CreatedAt()))
	suite.Require().NoError(suite.repository.Add(ctx, cancelledOrder))

	pending, err := suite.repository.GetAll(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Len(pending, 1)
	suite.Equal(pendingOrder.ID(), pending[0].ID())

	all, err := suite.repository.GetAll(ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 2)

	suite.tracker.AssertExpectations(suite.T())
}

// newTestOrder creates a pending two-line order for the given customer.
func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(number string, userID kernel.UUID) *order.Order {
	destination, err := kernel.NewGeoPoint(28.7041, 77.1025)
	suite.Require().NoError(err)

	tomato, err := order.NewItem(kernel.NewUUID(), "Tomato", 2, product.UnitKg, 40)
	suite.Require().NoError(err)
	cucumber, err := order.NewItem(kernel.NewUUID(), "Cucumber", 3, product.UnitPiece, 5)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		userID,
		[]order.Item{tomato, cucumber},
		"12 Market Street",
		destination,
		"+911234567890",
		"ring the bell",
		3.2,
		82,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
