package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a restaurant owner's request to change a
// dish's name, description, or price.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
func NewUpdateMenuItemCommand(
	menuItemID, restaurantID kernel.UUID,
	name, description string,
	price float64,
) (UpdateMenuItemCommand, error) {
	command := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenuItemID(menuItemID),
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the item to edit.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the calling restaurant's account ID.
func (c UpdateMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string { return c.name }

// Description returns the new dish description.
func (c UpdateMenuItemCommand) Description() string { return c.description }

// Price returns the new catalog price.
func (c UpdateMenuItemCommand) Price() float64 { return c.price }

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
