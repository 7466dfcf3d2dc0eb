package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
)

// ApproveRestaurantCommandHandler handles admin approval of restaurants.
type ApproveRestaurantCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewApproveRestaurantCommandHandler creates a handler for restaurant
// approval.
func NewApproveRestaurantCommandHandler(uowFactory AccountUoWFactory) ApproveRestaurantCommandHandler {
	return ApproveRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval. Returns ErrAdminOnly for non-admin callers
// and account.ErrRoleMismatch when the target is not a restaurant.
func (h ApproveRestaurantCommandHandler) Handle(ctx context.Context, command ApproveRestaurantCommand) error {
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

	restaurant, err := accountRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}
	if err = restaurant.Approve(); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
