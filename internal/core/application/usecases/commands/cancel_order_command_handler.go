package commands

import (
	"context"
	"errors"
)

// ErrNotOrderOwner is returned when the cancelling customer did not place
// the order.
var ErrNotOrderOwner = errors.New("order belongs to a different customer")

// CancelOrderCommandHandler handles customer-initiated cancellations. The
// window is narrow: only Pending and InProgress orders may be cancelled, once
// the kitchen starts preparing the order is committed. Re-cancelling an
// already cancelled order succeeds without changing anything, so client
// retries are safe.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. Returns ErrNotOrderOwner when the email
// resolves to a different account than the order's customer, and
// order.ErrNotCancellable when the order is past InProgress.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caller, err := uow.AccountRepository().GetByEmail(ctx, command.CustomerEmail())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	theOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if theOrder.Customer() == nil || !theOrder.Customer().IsEqual(caller.ID()) {
		return ErrNotOrderOwner
	}

	if err = theOrder.CancelByCustomer(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
