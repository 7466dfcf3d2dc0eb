package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a restaurant owner's request to remove a
// dish from their menu.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to remove a menu item.
func NewDeleteMenuItemCommand(menuItemID, restaurantID kernel.UUID) (DeleteMenuItemCommand, error) {
	command := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	command.menuItemID = menuItemID
	command.restaurantID = restaurantID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the item to remove.
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the calling restaurant's account ID.
func (c DeleteMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }
