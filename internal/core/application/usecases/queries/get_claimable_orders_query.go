package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetClaimableOrdersQueryIsNotConstructed = errors.New(
	"GetClaimableOrdersQuery must be created via NewGetClaimableOrdersQuery constructor",
)

// GetClaimableOrdersQuery retrieves the orders a courier can currently claim:
// ready, unclaimed, and belonging to the restaurant the courier holds an
// accepted affiliation with.
type GetClaimableOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClaimableOrdersQuery creates a query for a courier's claimable
// orders.
func NewGetClaimableOrdersQuery(courierID kernel.UUID) (GetClaimableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetClaimableOrdersQuery{}, err
	}

	return GetClaimableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableOrdersQueryIsNotConstructed)
}

// CourierID returns the asking courier's account ID.
func (q GetClaimableOrdersQuery) CourierID() kernel.UUID { return q.courierID }

// GetClaimableOrdersQueryResponse is one claimable order listing. A courier
// claiming from this list can still lose the race; the list is a snapshot,
// not a reservation.
type GetClaimableOrdersQueryResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	DeliveryAddress string
	TotalAmount     float64
	CreatedAt       time.Time
}
