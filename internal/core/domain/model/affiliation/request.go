// Package affiliation provides the courier-restaurant affiliation registry's
// Request aggregate. A courier must hold an ACCEPTED affiliation with a
// restaurant before it may see or claim that restaurant's orders; accepting
// a new request supersedes the courier's prior affiliation.
package affiliation

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when using a Request that was
	// not created via NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrRequestAlreadyResolved is returned when accepting or rejecting a
	// request that is no longer pending.
	ErrRequestAlreadyResolved = errors.New("affiliation request has already been resolved")

	// ErrNotAffiliated is returned when a courier acts on a restaurant it
	// has no accepted affiliation with.
	ErrNotAffiliated = errors.New("courier is not affiliated with this restaurant")

	// ErrNotRequestOwner is returned when an account acts on a request that
	// belongs to a different courier or restaurant.
	ErrNotRequestOwner = errors.New("request belongs to a different account")
)

// Request is a courier's application to work for a restaurant. Only the
// target restaurant may accept or reject it; the requesting courier may
// cancel it while pending.
type Request struct {
	id           kernel.UUID
	courierID    kernel.UUID
	restaurantID kernel.UUID
	status       RequestStatus
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a pending affiliation request from a courier to a
// restaurant.
func NewRequest(id, courierID, restaurantID kernel.UUID, createdAt time.Time) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		courierID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:           id,
		courierID:    courierID,
		restaurantID: restaurantID,
		status:       Pending,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRequest reconstructs a Request from persistence.
func RestoreRequest(
	id, courierID, restaurantID kernel.UUID,
	status RequestStatus,
	createdAt time.Time,
) (*Request, error) {
	request, err := NewRequest(id, courierID, restaurantID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	request.status = status
	return request, nil
}

// Validate ensures the Request was created via a constructor.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// Courier returns the requesting courier's ID.
func (r *Request) Courier() kernel.UUID { return r.courierID }

// Restaurant returns the target restaurant's ID.
func (r *Request) Restaurant() kernel.UUID { return r.restaurantID }

// Status returns the request lifecycle state.
func (r *Request) Status() RequestStatus { return r.status }

// CreatedAt returns when the courier filed the request.
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// IsPending reports whether the request awaits the restaurant's response.
func (r *Request) IsPending() bool { return r.status == Pending }

// Accept resolves a pending request in the courier's favor.
func (r *Request) Accept() error {
	if r.status != Pending {
		return fmt.Errorf("%w: status is %s", ErrRequestAlreadyResolved, r.status)
	}
	r.status = Accepted
	return nil
}

// Reject resolves a pending request against the courier.
func (r *Request) Reject() error {
	if r.status != Pending {
		return fmt.Errorf("%w: status is %s", ErrRequestAlreadyResolved, r.status)
	}
	r.status = Rejected
	return nil
}

// Supersede retires an accepted affiliation after the courier re-affiliated
// with another restaurant, keeping at most one Accepted row per courier.
func (r *Request) Supersede() error {
	if r.status != Accepted {
		return fmt.Errorf("%w: status is %s", ErrRequestAlreadyResolved, r.status)
	}
	r.status = Superseded
	return nil
}
