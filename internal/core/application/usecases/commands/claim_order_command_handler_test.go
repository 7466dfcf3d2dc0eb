package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCourier(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()

	courier, err := account.NewCourierAccount(id, "Carl", "carl@example.com", "hash", "555-0003")
	require.NoError(t, err)
	return courier
}

func testReadyOrder(t *testing.T, id kernel.UUID, restaurantID *kernel.UUID) *order.Order {
	t.Helper()

	customerID := kernel.NewUUID()
	items := []order.LineItem{
		{MenuItemID: kernel.NewUUID(), Name: "Margherita", UnitPrice: 12.50, Quantity: 2},
	}

	readyOrder, err := order.RestoreOrder(
		id, &customerID, restaurantID, nil, items,
		"12 Main Street", order.CashOnDelivery, order.Delivery,
		0, 25.00, order.Ready, time.Now().UTC(), 1,
	)
	require.NoError(t, err)
	return readyOrder
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	require.NoError(t, err)

	courier := testCourier(t, courierID)
	readyOrder := testReadyOrder(t, orderID, &restaurantID)
	accepted, err := affiliation.RestoreRequest(
		kernel.NewUUID(), courierID, restaurantID, affiliation.Accepted, time.Now().UTC(),
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	affiliationRepo := new(MockAffiliationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, courierID).Return(courier, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(readyOrder, nil).Once(),
		uow.On("AffiliationRepository").Return(affiliationRepo).Once(),
		affiliationRepo.On("GetAcceptedByCourier", ctx, courierID).Return(accepted, nil).Once(),
		orderRepo.On("Claim", ctx, orderID, courierID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	accountRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	affiliationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_NoAcceptedAffiliation(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	affiliationRepo := new(MockAffiliationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, courierID).Return(testCourier(t, courierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testReadyOrder(t, orderID, &restaurantID), nil).Once(),
		uow.On("AffiliationRepository").Return(affiliationRepo).Once(),
		affiliationRepo.On("GetAcceptedByCourier", ctx, courierID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, affiliation.ErrNotAffiliated)
	orderRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_AffiliatedWithDifferentRestaurant(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	require.NoError(t, err)

	// accepted affiliation points at another restaurant
	accepted, err := affiliation.RestoreRequest(
		kernel.NewUUID(), courierID, kernel.NewUUID(), affiliation.Accepted, time.Now().UTC(),
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	affiliationRepo := new(MockAffiliationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, courierID).Return(testCourier(t, courierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testReadyOrder(t, orderID, &restaurantID), nil).Once(),
		uow.On("AffiliationRepository").Return(affiliationRepo).Once(),
		affiliationRepo.On("GetAcceptedByCourier", ctx, courierID).Return(accepted, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, affiliation.ErrNotAffiliated)
	orderRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_OrderWithoutRestaurant(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, courierID).Return(testCourier(t, courierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testReadyOrder(t, orderID, nil), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, affiliation.ErrNotAffiliated)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	require.NoError(t, err)

	accepted, err := affiliation.RestoreRequest(
		kernel.NewUUID(), courierID, restaurantID, affiliation.Accepted, time.Now().UTC(),
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	orderRepo := new(MockOrderRepository)
	affiliationRepo := new(MockAffiliationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, courierID).Return(testCourier(t, courierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testReadyOrder(t, orderID, &restaurantID), nil).Once(),
		uow.On("AffiliationRepository").Return(affiliationRepo).Once(),
		affiliationRepo.On("GetAcceptedByCourier", ctx, courierID).Return(accepted, nil).Once(),
		orderRepo.On("Claim", ctx, orderID, courierID).Return(order.ErrAlreadyClaimed).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_BlockedCourier(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(courierID, orderID)
	require.NoError(t, err)

	courier := testCourier(t, courierID)
	require.NoError(t, courier.SetStatus(account.Suspended))

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, courierID).Return(courier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, account.ErrAccountBlocked)
}

func TestClaimOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ClaimOrderCommand{} // not constructed properly

	factory := new(MockClaimUoWFactory)
	handler := commands.NewClaimOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrClaimOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
