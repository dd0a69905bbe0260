package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/pkg/errs"
)

const testCancelWindow = 5 * time.Minute

func testOrder(t *testing.T, userID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	p := testProduct(t)
	itemKg, err := order.NewItem(p.ID(), p.Name(), 2, product.UnitKg, 40)
	require.NoError(t, err)
	itemPiece, err := order.NewItem(p.ID(), p.Name(), 3, product.UnitPiece, 5)
	require.NoError(t, err)

	dest, err := kernel.NewGeoPoint(28.7041, 77.1025)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(createdAt), userID,
		[]order.Item{itemKg, itemPiece},
		"45 Model Town", dest, "+911234567890", "", 3.2, 82, createdAt)
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_RestoresExactQuantities(t *testing.T) {
	ctx := t.Context()
	customer := testCustomer(t)
	o := testOrder(t, customer.ID(), time.Now().UTC())
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customer.ID(), "user")
	require.NoError(t, err)

	productID := o.Items()[0].ProductID()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	productRepo.On("RestoreStock", ctx, productID, product.UnitKg, 2.0).Return(nil).Once()
	productRepo.On("RestoreStock", ctx, productID, product.UnitPiece, 3.0).Return(nil).Once()
	userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once()

	notifier := new(MockNotificationSink)
	notifier.On("OrderCancelled", ctx, customer, o).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier, testCancelWindow)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, "user", o.CancelledBy())
	require.NotNil(t, o.CancelledAt())
	productRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignOrderForbidden(t *testing.T) {
	ctx := t.Context()
	owner := testCustomer(t)
	o := testOrder(t, owner.ID(), time.Now().UTC())
	stranger := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(o.ID(), stranger, "user")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotificationSink), testCancelWindow)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, o.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_WindowElapsed(t *testing.T) {
	ctx := t.Context()
	customer := testCustomer(t)
	o := testOrder(t, customer.ID(), time.Now().UTC().Add(-10*time.Minute))
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customer.ID(), "user")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotificationSink), testCancelWindow)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, order.ErrCancelWindowElapsed)
	assert.Equal(t, order.Pending, o.Status())
}

func TestCancelOrderCommandHandler_Handle_AdminIgnoresWindow(t *testing.T) {
	ctx := t.Context()
	customer := testCustomer(t)
	o := testOrder(t, customer.ID(), time.Now().UTC().Add(-48*time.Hour))
	cmd, err := commands.NewCancelOrderCommand(o.ID(), kernel.NewUUID(), "admin")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	productRepo.On("RestoreStock", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once()

	notifier := new(MockNotificationSink)
	notifier.On("OrderCancelled", ctx, customer, o).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier, testCancelWindow)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, "admin", o.CancelledBy())
}
