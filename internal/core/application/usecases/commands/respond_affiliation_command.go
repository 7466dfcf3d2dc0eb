package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRespondAffiliationCommandIsNotConstructed = errors.New(
	"RespondAffiliationCommand must be created via NewRespondAffiliationCommand constructor",
)

// RespondAffiliationCommand represents a restaurant's decision on a courier's
// affiliation request.
type RespondAffiliationCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	requestID    kernel.UUID
	accept       bool

	guard guard.ConstructorGuard
}

// NewRespondAffiliationCommand creates a command to accept or reject an
// affiliation request.
func NewRespondAffiliationCommand(restaurantID, requestID kernel.UUID, accept bool) (RespondAffiliationCommand, error) {
	command := RespondAffiliationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(restaurantID.Validate(), requestID.Validate()); err != nil {
		return RespondAffiliationCommand{}, err
	}

	command.restaurantID = restaurantID
	command.requestID = requestID
	command.accept = accept
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondAffiliationCommand) Validate() error {
	return c.guard.Validate(ErrRespondAffiliationCommandIsNotConstructed)
}

// RestaurantID returns the responding restaurant's account ID.
func (c RespondAffiliationCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// RequestID returns the request being resolved.
func (c RespondAffiliationCommand) RequestID() kernel.UUID { return c.requestID }

// Accept reports whether the request is accepted rather than rejected.
func (c RespondAffiliationCommand) Accept() bool { return c.accept }
