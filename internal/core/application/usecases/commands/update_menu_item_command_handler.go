package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/menu"
)

// ErrNotMenuItemOwner is returned when a restaurant edits an item that
// belongs to a different restaurant.
var ErrNotMenuItemOwner = errors.New("menu item belongs to a different restaurant")

// UpdateMenuItemCommandHandler handles menu item edits. Items referenced by a
// non-final order are frozen: the order's snapshot must stay meaningful for
// display, so the edit is rejected until those orders finish.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command. Returns menu.ErrItemInActiveOrder while
// any non-final order references the item.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, command UpdateMenuItemCommand) error {
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

	active, err := uow.OrderRepository().CountActiveByMenuItem(ctx, item.ID())
	if err != nil {
		return err
	}
	if active > 0 {
		return menu.ErrItemInActiveOrder
	}

	if err = item.Update(command.Name(), command.Description(), command.Price()); err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
