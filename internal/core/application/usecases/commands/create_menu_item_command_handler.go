package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles menu item creation by restaurant
// owners.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. The caller must be an active
// restaurant account; new items start available.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, command CreateMenuItemCommand) error {
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

	owner, err := uow.AccountRepository().Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}
	if _, err = owner.Restaurant(); err != nil {
		return err
	}
	if err = owner.EnsureActive(); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(
		command.MenuItemID(),
		command.RestaurantID(),
		command.Name(),
		command.Description(),
		command.Price(),
	)
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
