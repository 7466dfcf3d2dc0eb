package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderCommandHandler_Handle_CustomerCancels(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(customerID, orderID, order.CancelledByCustomer)
	require.NoError(t, err)

	customer := testCustomer(t, customerID, "alice@example.com")
	pendingOrder := testOrderInStatus(t, orderID, customerID, order.Pending)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, customerID).Return(customer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(pendingOrder, nil).Once(),
		orderRepo.On("Update", ctx, pendingOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.CancelledByCustomer, pendingOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_CustomerCancelIsIdempotent(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(customerID, orderID, order.CancelledByCustomer)
	require.NoError(t, err)

	customer := testCustomer(t, customerID, "alice@example.com")
	cancelledOrder := testOrderInStatus(t, orderID, customerID, order.CancelledByCustomer)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, customerID).Return(customer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(cancelledOrder, nil).Once(),
		orderRepo.On("Update", ctx, cancelledOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.CancelledByCustomer, cancelledOrder.Status())
}

func TestAdvanceOrderCommandHandler_Handle_CustomerMayOnlyCancel(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(customerID, orderID, order.Ready)
	require.NoError(t, err)

	customer := testCustomer(t, customerID, "alice@example.com")
	preparingOrder := testOrderInStatus(t, orderID, customerID, order.Preparing)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, customerID).Return(customer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(preparingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionNotPermitted)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceOrderCommandHandler_Handle_CustomerMustOwnTheOrder(t *testing.T) {
	ctx := t.Context()

	callerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(callerID, orderID, order.CancelledByCustomer)
	require.NoError(t, err)

	caller := testCustomer(t, callerID, "mallory@example.com")
	othersOrder := testOrderInStatus(t, orderID, kernel.NewUUID(), order.Pending)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, callerID).Return(caller, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(othersOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotOrderParticipant)
	assert.Equal(t, order.Pending, othersOrder.Status())
}
