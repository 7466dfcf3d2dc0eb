package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a customer's request to put a quantity of a
// menu item into their cart.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, menuItemID, 2)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrMixedRestaurant) {
//	    // the cart holds items from another restaurant
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to the customer's
// cart. Quantity must be positive.
func NewAddCartItemCommand(customerID, menuItemID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerID.Validate(),
		menuItemID.Validate(),
		func() error {
			if quantity < 1 {
				return errs.NewValueIsInvalidErrorWithCause("quantity",
					fmt.Errorf("%d is not greater than 0", quantity))
			}
			return nil
		}(),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	command.customerID = customerID
	command.menuItemID = menuItemID
	command.quantity = quantity
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's account ID.
func (c AddCartItemCommand) CustomerID() kernel.UUID { return c.customerID }

// MenuItemID returns the menu item to add.
func (c AddCartItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int { return c.quantity }
