package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/pkg/errs"
)

// ClaimOrderCommandHandler handles courier claims. The claim itself is a
// single conditional update in the repository, so two couriers racing for the
// same order cannot both win; the loser gets order.ErrAlreadyClaimed. The
// affiliation check runs in the same transaction as the claim.
type ClaimOrderCommandHandler struct {
	uowFactory ClaimUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for courier claims.
func NewClaimOrderCommandHandler(uowFactory ClaimUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim. The courier must be active and hold an accepted
// affiliation with the order's restaurant; otherwise the claim fails with
// affiliation.ErrNotAffiliated before the conditional update is attempted.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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

	courier, err := uow.AccountRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if _, err = courier.Courier(); err != nil {
		return err
	}
	if err = courier.EnsureActive(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	theOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if theOrder.Restaurant() == nil {
		return affiliation.ErrNotAffiliated
	}

	accepted, err := uow.AffiliationRepository().GetAcceptedByCourier(ctx, command.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return affiliation.ErrNotAffiliated
	}
	if err != nil {
		return err
	}
	if !accepted.Restaurant().IsEqual(*theOrder.Restaurant()) {
		return affiliation.ErrNotAffiliated
	}

	if err = orderRepo.Claim(ctx, command.OrderID(), command.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
