package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a customer's request to take a menu item
// out of their cart. With all=false a single unit is removed; with all=true
// the whole line is dropped regardless of quantity.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	menuItemID kernel.UUID
	all        bool

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove an item from the
// customer's cart.
func NewRemoveCartItemCommand(customerID, menuItemID kernel.UUID, all bool) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(customerID.Validate(), menuItemID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}

	command.customerID = customerID
	command.menuItemID = menuItemID
	command.all = all
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's account ID.
func (c RemoveCartItemCommand) CustomerID() kernel.UUID { return c.customerID }

// MenuItemID returns the menu item to remove.
func (c RemoveCartItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// All reports whether the whole line is dropped instead of one unit.
func (c RemoveCartItemCommand) All() bool { return c.all }
