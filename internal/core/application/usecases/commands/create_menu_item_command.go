package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a restaurant owner's request to add a dish
// to their menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
func NewCreateMenuItemCommand(
	menuItemID, restaurantID kernel.UUID,
	name, description string,
	price float64,
) (CreateMenuItemCommand, error) {
	command := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenuItemID(menuItemID),
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier assigned to the new item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the owning restaurant's account ID.
func (c CreateMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Name returns the dish name.
func (c CreateMenuItemCommand) Name() string { return c.name }

// Description returns the dish description.
func (c CreateMenuItemCommand) Description() string { return c.description }

// Price returns the catalog price.
func (c CreateMenuItemCommand) Price() float64 { return c.price }

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
