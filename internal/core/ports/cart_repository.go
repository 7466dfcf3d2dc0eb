package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer owns at most one cart.
type CartRepository interface {
	// Add persists a newly created cart.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists the cart's current lines, replacing the stored ones.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the customer's cart. Returns
	// errs.ErrObjectNotFound when the customer has never added an item.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetAllByRestaurants retrieves all non-empty carts currently holding
	// items of the given restaurants. Used by the unavailable-restaurant
	// sweep.
	GetAllByRestaurants(ctx context.Context, restaurantIDs []kernel.UUID) ([]*cart.Cart, error)

	// DeleteByCustomer removes the customer's cart entirely. Used by account
	// retirement. Returns the number of deleted carts (0 or 1).
	DeleteByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)
}
