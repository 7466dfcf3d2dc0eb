package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
)

// DeleteMenuItemCommandHandler handles menu item removal. The same freeze as
// for edits applies: items referenced by a non-final order cannot be removed.
// Finished orders are unaffected because they hold their own snapshot.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item removal.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Returns menu.ErrItemInActiveOrder
// while any non-final order references the item.
func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, command DeleteMenuItemCommand) error {
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

	if err = uow.MenuItemRepository().Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
