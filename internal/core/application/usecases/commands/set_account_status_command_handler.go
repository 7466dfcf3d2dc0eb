package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrAdminOnly is returned when a non-admin invokes an administrative
// operation.
var ErrAdminOnly = errors.New("operation requires an admin account")

// SetAccountStatusCommandHandler handles administrative status changes.
// Suspending or banning a restaurant cancels its open orders in the same
// transaction that flips the status: a checkout racing the suspension either
// commits first and is cancelled here, or observes the blocked status and
// fails its own precondition.
type SetAccountStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetAccountStatusCommandHandler creates a handler for status changes.
func NewSetAccountStatusCommandHandler(uowFactory OrderUoWFactory) SetAccountStatusCommandHandler {
	return SetAccountStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. Returns ErrAdminOnly for non-admin
// callers and account.ErrAdminCannotBeBlocked when targeting an admin with a
// blocking status.
func (h SetAccountStatusCommandHandler) Handle(ctx context.Context, command SetAccountStatusCommand) error {
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

	accountRepo := uow.AccountRepository()

	admin, err := accountRepo.Get(ctx, command.AdminID())
	if err != nil {
		return err
	}
	if admin.Role() != account.Admin {
		return ErrAdminOnly
	}

	target, err := accountRepo.Get(ctx, command.AccountID())
	if err != nil {
		return err
	}

	if err = target.SetStatus(command.Status()); err != nil {
		return err
	}

	if target.Role() == account.RestaurantOwner && command.Status().IsBlocked() {
		if err = h.cancelOpenOrders(ctx, uow, target); err != nil {
			return err
		}
	}

	if err = accountRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// cancelOpenOrders cancels every order of the restaurant still in the
// kitchen pipeline. Ready and picked-up orders finish their delivery.
func (h SetAccountStatusCommandHandler) cancelOpenOrders(
	ctx context.Context,
	uow OrderUoW,
	restaurant *account.Account,
) error {
	orderRepo := uow.OrderRepository()

	open, err := orderRepo.GetAllByRestaurantInStatuses(ctx, restaurant.ID(), []order.Status{
		order.Pending,
		order.InProgress,
		order.Preparing,
	})
	if err != nil {
		return err
	}

	for _, theOrder := range open {
		if err = theOrder.Cancel(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, theOrder); err != nil {
			return err
		}
	}
	return nil
}
