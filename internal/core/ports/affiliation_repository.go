package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AffiliationRepository defines the persistence contract for courier
// affiliation requests.
type AffiliationRepository interface {
	// Add persists a new affiliation request.
	Add(ctx context.Context, aggregate *affiliation.Request) error

	// Update persists a status change on an existing request.
	Update(ctx context.Context, aggregate *affiliation.Request) error

	// Get retrieves a request by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*affiliation.Request, error)

	// GetAcceptedByCourier retrieves the courier's currently accepted request,
	// if any. Returns errs.ErrObjectNotFound when the courier has none.
	GetAcceptedByCourier(ctx context.Context, courierID kernel.UUID) (*affiliation.Request, error)

	// GetPendingByCourierAndRestaurant retrieves the courier's pending request
	// to the given restaurant. Returns errs.ErrObjectNotFound when none exists.
	GetPendingByCourierAndRestaurant(
		ctx context.Context,
		courierID kernel.UUID,
		restaurantID kernel.UUID,
	) (*affiliation.Request, error)

	// Delete removes a request. Used when a courier withdraws a pending
	// request.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByRestaurant retrieves every request addressed to a restaurant,
	// newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*affiliation.Request, error)

	// DeleteByCourier removes all of a courier's requests. Used by account
	// retirement. Returns the number of deleted requests.
	DeleteByCourier(ctx context.Context, courierID kernel.UUID) (int64, error)

	// DeleteByRestaurant removes all requests addressed to a restaurant. Used
	// by account retirement. Returns the number of deleted requests.
	DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)
}
