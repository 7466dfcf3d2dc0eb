package cart

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when using a Cart that was not
	// created via NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrMixedRestaurant is returned when adding an item from a different
	// restaurant than the one the non-empty cart already references.
	ErrMixedRestaurant = errors.New("cart may only hold items from a single restaurant")

	// ErrLineNotFound is returned when removing an item that is not in the
	// cart.
	ErrLineNotFound = errors.New("item is not in the cart")
)

// Line is one cart entry: a menu item reference and a quantity. The cart
// deliberately stores only the item ID, never the live catalog entity; the
// item's current name and price are looked up by ID when needed for display.
type Line struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// Cart is a customer's pending, unconfirmed selection of menu items. Each
// customer owns exactly one cart, created lazily on first add and cleared
// (not deleted) on checkout.
//
// Invariant: all lines of a non-empty cart reference the same restaurant.
// The owning restaurant is tracked explicitly and reset when the cart
// empties, so the next add is free to pick any restaurant.
type Cart struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID *kernel.UUID
	lines        []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:         id,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a Cart from persistence.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, restaurantID *kernel.UUID, lines []Line) (*Cart, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	if len(lines) > 0 && restaurantID == nil {
		return nil, errs.NewValueIsRequiredError("restaurant of a non-empty cart")
	}

	return &Cart{
		id:           id,
		customerID:   customerID,
		restaurantID: restaurantID,
		lines:        lines,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Cart was created via a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart identifier.
func (c *Cart) ID() kernel.UUID { return c.id }

// Customer returns the owning customer's ID.
func (c *Cart) Customer() kernel.UUID { return c.customerID }

// Restaurant returns the restaurant all current lines belong to, or nil for
// an empty cart.
func (c *Cart) Restaurant() *kernel.UUID { return c.restaurantID }

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem merges quantity of the given menu item into the cart. Quantities
// for an item already in the cart are additive. Adding an item owned by a
// different restaurant than the cart's current one fails with
// ErrMixedRestaurant and leaves the cart unchanged.
func (c *Cart) AddItem(menuItemID kernel.UUID, restaurantID kernel.UUID, quantity int) error {
	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if c.restaurantID != nil && !c.restaurantID.IsEqual(restaurantID) {
		return ErrMixedRestaurant
	}

	for i := range c.lines {
		if c.lines[i].MenuItemID.IsEqual(menuItemID) {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{MenuItemID: menuItemID, Quantity: quantity})
	c.restaurantID = &restaurantID
	return nil
}

// RemoveOne decrements the quantity of the given item by one, dropping the
// line when it reaches zero. Emptying the last line resets the cart's
// restaurant.
func (c *Cart) RemoveOne(menuItemID kernel.UUID) error {
	for i := range c.lines {
		if c.lines[i].MenuItemID.IsEqual(menuItemID) {
			c.lines[i].Quantity--
			if c.lines[i].Quantity < 1 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			if len(c.lines) == 0 {
				c.restaurantID = nil
			}
			return nil
		}
	}
	return ErrLineNotFound
}

// RemoveAll drops the line for the given item regardless of quantity.
func (c *Cart) RemoveAll(menuItemID kernel.UUID) error {
	for i := range c.lines {
		if c.lines[i].MenuItemID.IsEqual(menuItemID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			if len(c.lines) == 0 {
				c.restaurantID = nil
			}
			return nil
		}
	}
	return ErrLineNotFound
}

// Clear empties the cart. Used on successful checkout and by the
// unavailable-restaurant self-heal; the cart record itself persists.
func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = nil
}
