package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their payment satellites.
type OrderRepository interface {
	// Add persists a new order aggregate with its line-item snapshot.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddPayment persists the payment record created with an order.
	// Called in the same transaction as Add.
	AddPayment(ctx context.Context, payment *order.Payment) error

	// Update persists changes to an existing order under optimistic locking:
	// the write succeeds only if the stored version still matches the one
	// the aggregate was loaded with. Returns errs.ErrVersionIsInvalid on a
	// concurrent modification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, including line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByRestaurantInStatuses retrieves a restaurant's orders currently
	// in any of the given statuses. Used by the suspension cascade.
	GetAllByRestaurantInStatuses(
		ctx context.Context,
		restaurantID kernel.UUID,
		statuses []order.Status,
	) ([]*order.Order, error)

	// Claim atomically assigns the courier to the order. The precondition
	// check (order unclaimed and in Ready status) and the mutation happen in
	// a single conditional update, so concurrent claims cannot both succeed.
	// Returns order.ErrAlreadyClaimed when another courier holds the order,
	// order.ErrNotClaimable when the order is not Ready, and
	// errs.ErrObjectNotFound when the order does not exist.
	Claim(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error

	// CountActiveByMenuItem counts non-final orders whose snapshot references
	// the given menu item. Menu edits are blocked while this is non-zero.
	CountActiveByMenuItem(ctx context.Context, menuItemID kernel.UUID) (int64, error)

	// DetachCustomer nullifies the customer reference on all of the
	// customer's orders, preserving the records after account retirement.
	// Returns the number of affected orders.
	DetachCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)

	// DetachRestaurant nullifies the restaurant reference on all of the
	// restaurant's orders. Returns the number of affected orders.
	DetachRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)

	// DetachCourier clears the courier slot on the courier's non-terminal
	// orders, releasing them for other couriers. Returns the number of
	// affected orders.
	DetachCourier(ctx context.Context, courierID kernel.UUID) (int64, error)
}
