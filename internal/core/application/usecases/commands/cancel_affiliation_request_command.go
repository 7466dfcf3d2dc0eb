package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelAffiliationRequestCommandIsNotConstructed = errors.New(
	"CancelAffiliationRequestCommand must be created via NewCancelAffiliationRequestCommand constructor",
)

// CancelAffiliationRequestCommand represents a courier withdrawing a pending
// affiliation request before the restaurant responds.
type CancelAffiliationRequestCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAffiliationRequestCommand creates a command to withdraw a pending
// request.
func NewCancelAffiliationRequestCommand(courierID, requestID kernel.UUID) (CancelAffiliationRequestCommand, error) {
	command := CancelAffiliationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(courierID.Validate(), requestID.Validate()); err != nil {
		return CancelAffiliationRequestCommand{}, err
	}

	command.courierID = courierID
	command.requestID = requestID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAffiliationRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelAffiliationRequestCommandIsNotConstructed)
}

// CourierID returns the withdrawing courier's account ID.
func (c CancelAffiliationRequestCommand) CourierID() kernel.UUID { return c.courierID }

// RequestID returns the request to withdraw.
func (c CancelAffiliationRequestCommand) RequestID() kernel.UUID { return c.requestID }
