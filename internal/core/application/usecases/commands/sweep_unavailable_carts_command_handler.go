package commands

import (
	"context"
)

// SweepUnavailableCartsCommandHandler clears carts pointing at blocked
// restaurants. Run periodically by the job scheduler.
type SweepUnavailableCartsCommandHandler struct {
	uowFactory SweepUoWFactory
}

// NewSweepUnavailableCartsCommandHandler creates a handler for the cart
// sweep.
func NewSweepUnavailableCartsCommandHandler(uowFactory SweepUoWFactory) SweepUnavailableCartsCommandHandler {
	return SweepUnavailableCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one sweep and returns how many carts were cleared.
func (h SweepUnavailableCartsCommandHandler) Handle(
	ctx context.Context,
	command SweepUnavailableCartsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	blocked, err := uow.AccountRepository().GetBlockedRestaurantIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(blocked) == 0 {
		return 0, nil
	}

	cartRepo := uow.CartRepository()

	carts, err := cartRepo.GetAllByRestaurants(ctx, blocked)
	if err != nil {
		return 0, err
	}

	for _, customerCart := range carts {
		customerCart.Clear()
		if err = cartRepo.Update(ctx, customerCart); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(carts), nil
}
