package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRequestAffiliationCommandIsNotConstructed = errors.New(
	"RequestAffiliationCommand must be created via NewRequestAffiliationCommand constructor",
)

// RequestAffiliationCommand represents a courier's application to work for a
// restaurant.
type RequestAffiliationCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	courierID    kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestAffiliationCommand creates a command to file an affiliation
// request.
func NewRequestAffiliationCommand(requestID, courierID, restaurantID kernel.UUID) (RequestAffiliationCommand, error) {
	command := RequestAffiliationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		courierID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return RequestAffiliationCommand{}, err
	}

	command.requestID = requestID
	command.courierID = courierID
	command.restaurantID = restaurantID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestAffiliationCommand) Validate() error {
	return c.guard.Validate(ErrRequestAffiliationCommandIsNotConstructed)
}

// RequestID returns the identifier assigned to the new request.
func (c RequestAffiliationCommand) RequestID() kernel.UUID { return c.requestID }

// CourierID returns the applying courier's account ID.
func (c RequestAffiliationCommand) CourierID() kernel.UUID { return c.courierID }

// RestaurantID returns the target restaurant's account ID.
func (c RequestAffiliationCommand) RestaurantID() kernel.UUID { return c.restaurantID }
