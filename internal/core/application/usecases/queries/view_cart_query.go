// Package queries contains read operations in the CQRS architecture. Most
// handlers read straight from the database with raw SQL and never touch the
// domain model; ViewCart is the exception because viewing a cart can heal it.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrViewCartQueryIsNotConstructed = errors.New(
	"ViewCartQuery must be created via NewViewCartQuery constructor",
)

// ViewCartQuery retrieves a customer's cart for display.
type ViewCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewViewCartQuery creates a query for the given customer's cart.
func NewViewCartQuery(customerID kernel.UUID) (ViewCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ViewCartQuery{}, err
	}

	return ViewCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ViewCartQuery) Validate() error {
	return q.guard.Validate(ErrViewCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's account ID.
func (q ViewCartQuery) CustomerID() kernel.UUID { return q.customerID }

// ViewCartItemResponse is one displayed cart line, priced from the current
// catalog. Cart lines only store item IDs, so prices here always reflect the
// live menu, not a snapshot.
type ViewCartItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  float64
	Quantity   int
}

// ViewCartQueryResponse is the customer's cart view. An empty response (no
// items, nil restaurant) is returned both for customers who never added an
// item and for carts that were just healed; RestaurantUnavailable is set
// only on the heal, so the client can tell the two apart.
type ViewCartQueryResponse struct {
	CartID                *kernel.UUID
	RestaurantID          *kernel.UUID
	Items                 []ViewCartItemResponse
	Subtotal              float64
	RestaurantUnavailable bool
}
