package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAllByRestaurant retrieves every menu item of a restaurant.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*menu.MenuItem, error)

	// Delete removes a menu item. Order snapshots are unaffected.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByRestaurant removes all of a restaurant's menu items. Used by
	// account retirement. Returns the number of deleted items.
	DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)
}
