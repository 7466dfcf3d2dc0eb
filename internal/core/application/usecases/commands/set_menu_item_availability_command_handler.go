package commands

import (
	"context"
)

// SetMenuItemAvailabilityCommandHandler handles availability toggles.
type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewSetMenuItemAvailabilityCommandHandler creates a handler for availability
// toggles.
func NewSetMenuItemAvailabilityCommandHandler(uowFactory MenuUoWFactory) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle. Ownership is verified; the active-order gate
// does not apply here.
func (h SetMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	command SetMenuItemAvailabilityCommand,
) error {
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

	item, err := uow.MenuItemRepository().Get(ctx, command.MenuItemID())
	if err != nil {
		return err
	}
	if !item.Restaurant().IsEqual(command.RestaurantID()) {
		return ErrNotMenuItemOwner
	}

	item.SetAvailable(command.Available())

	if err = uow.MenuItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
