package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrCannotRetireAccount is returned when the caller is neither the account
// owner nor an admin.
var ErrCannotRetireAccount = errors.New("only the account owner or an admin may retire an account")

// RetireSummary reports what the retirement cascade touched. Order records
// are never deleted, only detached from the retired account, so financial
// history stays intact.
type RetireSummary struct {
	DetachedOrders       int64
	CancelledOrders      int64
	DeletedMenuItems     int64
	DeletedCarts         int64
	DeletedRequests      int64
	UnaffiliatedCouriers int64
}

// RetireAccountCommandHandler removes an account and every dependent record
// in one transaction. The cascade is explicit per role rather than delegated
// to database foreign keys, so each step is visible here and reported in the
// summary.
type RetireAccountCommandHandler struct {
	uowFactory UoWFactory
}

// NewRetireAccountCommandHandler creates a handler for account retirement.
func NewRetireAccountCommandHandler(uowFactory UoWFactory) RetireAccountCommandHandler {
	return RetireAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retirement and returns a summary of the cascade.
func (h RetireAccountCommandHandler) Handle(ctx context.Context, command RetireAccountCommand) (RetireSummary, error) {
	if err := command.Validate(); err != nil {
		return RetireSummary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RetireSummary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	caller, err := accountRepo.Get(ctx, command.CallerID())
	if err != nil {
		return RetireSummary{}, err
	}
	if caller.Role() != account.Admin && !caller.ID().IsEqual(command.AccountID()) {
		return RetireSummary{}, ErrCannotRetireAccount
	}

	target, err := accountRepo.Get(ctx, command.AccountID())
	if err != nil {
		return RetireSummary{}, err
	}

	var summary RetireSummary
	switch target.Role() {
	case account.Customer:
		summary, err = h.retireCustomer(ctx, uow, target)
	case account.RestaurantOwner:
		summary, err = h.retireRestaurant(ctx, uow, target)
	case account.Courier:
		summary, err = h.retireCourier(ctx, uow, target)
	case account.Admin:
		// nothing depends on an admin account
	}
	if err != nil {
		return RetireSummary{}, err
	}

	if err = accountRepo.Delete(ctx, target.ID()); err != nil {
		return RetireSummary{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RetireSummary{}, err
	}

	return summary, nil
}

func (h RetireAccountCommandHandler) retireCustomer(
	ctx context.Context,
	uow UoW,
	target *account.Account,
) (RetireSummary, error) {
	var summary RetireSummary
	var err error

	if summary.DetachedOrders, err = uow.OrderRepository().DetachCustomer(ctx, target.ID()); err != nil {
		return summary, err
	}
	if summary.DeletedCarts, err = uow.CartRepository().DeleteByCustomer(ctx, target.ID()); err != nil {
		return summary, err
	}
	return summary, nil
}

func (h RetireAccountCommandHandler) retireRestaurant(
	ctx context.Context,
	uow UoW,
	target *account.Account,
) (RetireSummary, error) {
	var summary RetireSummary
	orderRepo := uow.OrderRepository()

	open, err := orderRepo.GetAllByRestaurantInStatuses(ctx, target.ID(), []order.Status{
		order.Pending,
		order.InProgress,
		order.Preparing,
		order.Ready,
	})
	if err != nil {
		return summary, err
	}
	for _, theOrder := range open {
		if err = theOrder.Cancel(); err != nil {
			return summary, err
		}
		if err = orderRepo.Update(ctx, theOrder); err != nil {
			return summary, err
		}
	}
	summary.CancelledOrders = int64(len(open))

	if summary.DetachedOrders, err = orderRepo.DetachRestaurant(ctx, target.ID()); err != nil {
		return summary, err
	}
	if summary.DeletedMenuItems, err = uow.MenuItemRepository().DeleteByRestaurant(ctx, target.ID()); err != nil {
		return summary, err
	}
	if summary.DeletedRequests, err = uow.AffiliationRepository().DeleteByRestaurant(ctx, target.ID()); err != nil {
		return summary, err
	}
	if summary.UnaffiliatedCouriers, err = uow.AccountRepository().ClearCourierAffiliations(ctx, target.ID()); err != nil {
		return summary, err
	}
	return summary, nil
}

func (h RetireAccountCommandHandler) retireCourier(
	ctx context.Context,
	uow UoW,
	target *account.Account,
) (RetireSummary, error) {
	var summary RetireSummary
	var err error

	if summary.DetachedOrders, err = uow.OrderRepository().DetachCourier(ctx, target.ID()); err != nil {
		return summary, err
	}
	if summary.DeletedRequests, err = uow.AffiliationRepository().DeleteByCourier(ctx, target.ID()); err != nil {
		return summary, err
	}
	return summary, nil
}
