package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAffiliationRequestsQueryIsNotConstructed = errors.New(
	"GetAffiliationRequestsQuery must be created via NewGetAffiliationRequestsQuery constructor",
)

// GetAffiliationRequestsQuery lists the affiliation requests filed with a
// restaurant, newest first.
type GetAffiliationRequestsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAffiliationRequestsQuery creates a query for a restaurant's
// affiliation requests.
func NewGetAffiliationRequestsQuery(restaurantID kernel.UUID) (GetAffiliationRequestsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetAffiliationRequestsQuery{}, err
	}

	return GetAffiliationRequestsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAffiliationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetAffiliationRequestsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose requests are listed.
func (q GetAffiliationRequestsQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// AffiliationRequestResponse is one request row as seen by the restaurant.
type AffiliationRequestResponse struct {
	ID        kernel.UUID
	CourierID kernel.UUID
	Status    affiliation.RequestStatus
	CreatedAt time.Time
}
