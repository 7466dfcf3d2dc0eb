package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

// SetMenuItemAvailabilityCommand toggles whether a dish can currently be
// ordered. Unlike edits, availability may change while orders reference the
// item: the snapshot keeps existing orders intact.
type SetMenuItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	available    bool

	guard guard.ConstructorGuard
}

// NewSetMenuItemAvailabilityCommand creates a command to toggle availability.
func NewSetMenuItemAvailabilityCommand(
	menuItemID, restaurantID kernel.UUID,
	available bool,
) (SetMenuItemAvailabilityCommand, error) {
	command := SetMenuItemAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	command.menuItemID = menuItemID
	command.restaurantID = restaurantID
	command.available = available
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

// MenuItemID returns the item to toggle.
func (c SetMenuItemAvailabilityCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the calling restaurant's account ID.
func (c SetMenuItemAvailabilityCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Available returns the requested availability state.
func (c SetMenuItemAvailabilityCommand) Available() bool { return c.available }
