package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates
// of all roles.
type AccountRepository interface {
	// Add persists a new account. The email must be unique.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its login email. Returns
	// errs.ErrObjectNotFound when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// GetBlockedRestaurantIDs lists restaurant accounts currently suspended
	// or banned. Used by the unavailable-restaurant cart sweep.
	GetBlockedRestaurantIDs(ctx context.Context) ([]kernel.UUID, error)

	// ClearCourierAffiliations removes the active affiliation from every
	// courier affiliated with the given restaurant. Used when a restaurant
	// account is retired. Returns the number of affected couriers.
	ClearCourierAffiliations(ctx context.Context, restaurantID kernel.UUID) (int64, error)

	// Delete removes the account record. Callers run the retirement cascade
	// over dependent records first.
	Delete(ctx context.Context, id kernel.UUID) error
}
