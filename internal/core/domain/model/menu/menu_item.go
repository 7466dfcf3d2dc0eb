// Package menu provides the MenuItem entity, the catalog the cart and
// checkout read from. Within the fulfillment core the catalog is mostly a
// read-side concern; its one hard rule is that an item referenced by a
// non-final order cannot be edited or removed, so order snapshots stay
// meaningful for display.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrMenuItemIsNotConstructed is returned when using a MenuItem that was
	// not created via NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrItemUnavailable is returned when adding an item that is currently
	// not orderable.
	ErrItemUnavailable = errors.New("menu item is currently unavailable")

	// ErrItemInActiveOrder blocks edits and removal of items referenced by a
	// non-final order.
	ErrItemInActiveOrder = errors.New("menu item is part of an active order")
)

// MenuItem is a dish offered by a restaurant. Price must be positive;
// availability is toggled by the owning restaurant.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64
	available    bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item for the given restaurant. New items start
// available.
func NewMenuItem(id, restaurantID kernel.UUID, name, description string, price float64) (*MenuItem, error) {
	item := &MenuItem{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	name, description string,
	price float64,
	available bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, restaurantID, name, description, price)
	if err != nil {
		return nil, err
	}
	item.available = available
	return item, nil
}

// Validate ensures the MenuItem was created via a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the item identifier.
func (m *MenuItem) ID() kernel.UUID { return m.id }

// Restaurant returns the owning restaurant's ID.
func (m *MenuItem) Restaurant() kernel.UUID { return m.restaurantID }

// Name returns the item name.
func (m *MenuItem) Name() string { return m.name }

// Description returns the item description.
func (m *MenuItem) Description() string { return m.description }

// Price returns the current catalog price.
func (m *MenuItem) Price() float64 { return m.price }

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool { return m.available }

// SetAvailable toggles item availability.
func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

// Update changes name, description, and price. Callers must first verify the
// item is not referenced by a non-final order.
func (m *MenuItem) Update(name, description string, price float64) error {
	if err := errors.Join(m.setName(name), m.setPrice(price)); err != nil {
		return err
	}
	m.description = description
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *MenuItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not greater than 0", price))
	}
	m.price = price
	return nil
}
