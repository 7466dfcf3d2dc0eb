package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAdmin(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()

	admin, err := account.NewAdminAccount(id, "Root", "root@example.com", "hash", "")
	require.NoError(t, err)
	return admin
}

func testOpenRestaurant(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()

	restaurant, err := account.NewRestaurantAccount(
		id, "Pasta Place", "owner@example.com", "hash", "555-0002",
		account.RestaurantProfile{Address: "1 Food Court", Approved: true, Open: true},
	)
	require.NoError(t, err)
	return restaurant
}

func TestSetAccountStatusCommandHandler_Handle_SuspendRestaurantCancelsOpenOrders(t *testing.T) {
	ctx := t.Context()

	adminID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewSetAccountStatusCommand(adminID, restaurantID, account.Suspended)
	require.NoError(t, err)

	admin := testAdmin(t, adminID)
	restaurant := testOpenRestaurant(t, restaurantID)

	pendingOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)
	preparingOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Preparing)
	openOrders := []*order.Order{pendingOrder, preparingOrder}
	openStatuses := []order.Status{order.Pending, order.InProgress, order.Preparing}

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		accountRepo.On("Get", ctx, restaurantID).Return(restaurant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByRestaurantInStatuses", ctx, restaurantID, openStatuses).Return(openOrders, nil).Once(),
		orderRepo.On("Update", ctx, pendingOrder).Return(nil).Once(),
		orderRepo.On("Update", ctx, preparingOrder).Return(nil).Once(),
		accountRepo.On("Update", ctx, restaurant).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, restaurant.IsBlocked())
	assert.Equal(t, order.Cancelled, pendingOrder.Status())
	assert.Equal(t, order.Cancelled, preparingOrder.Status())
	accountRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetAccountStatusCommandHandler_Handle_SuspendCustomerSkipsOrderCascade(t *testing.T) {
	ctx := t.Context()

	adminID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewSetAccountStatusCommand(adminID, customerID, account.Suspended)
	require.NoError(t, err)

	customer := testCustomer(t, customerID, "alice@example.com")

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, adminID).Return(testAdmin(t, adminID), nil).Once(),
		accountRepo.On("Get", ctx, customerID).Return(customer, nil).Once(),
		accountRepo.On("Update", ctx, customer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, customer.IsBlocked())
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestSetAccountStatusCommandHandler_Handle_ReinstateRestaurantSkipsOrderCascade(t *testing.T) {
	ctx := t.Context()

	adminID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewSetAccountStatusCommand(adminID, restaurantID, account.Active)
	require.NoError(t, err)

	restaurant := testOpenRestaurant(t, restaurantID)
	require.NoError(t, restaurant.SetStatus(account.Suspended))

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, adminID).Return(testAdmin(t, adminID), nil).Once(),
		accountRepo.On("Get", ctx, restaurantID).Return(restaurant, nil).Once(),
		accountRepo.On("Update", ctx, restaurant).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, restaurant.IsBlocked())
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestSetAccountStatusCommandHandler_Handle_NonAdminCaller(t *testing.T) {
	ctx := t.Context()

	callerID := kernel.NewUUID()
	targetID := kernel.NewUUID()

	cmd, err := commands.NewSetAccountStatusCommand(callerID, targetID, account.Suspended)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, callerID).Return(testCustomer(t, callerID, "alice@example.com"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdminOnly)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetAccountStatusCommandHandler_Handle_BlockingAnAdmin(t *testing.T) {
	ctx := t.Context()

	adminID := kernel.NewUUID()
	targetAdminID := kernel.NewUUID()

	cmd, err := commands.NewSetAccountStatusCommand(adminID, targetAdminID, account.Banned)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, adminID).Return(testAdmin(t, adminID), nil).Once(),
		accountRepo.On("Get", ctx, targetAdminID).Return(testAdmin(t, targetAdminID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAccountStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, account.ErrAdminCannotBeBlocked)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetAccountStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetAccountStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewSetAccountStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSetAccountStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
