package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a courier's request to take a ready order for
// delivery.
//
// Example:
//
//	cmd, _ := NewClaimOrderCommand(courierID, orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyClaimed) {
//	    // another courier won the race; pick a different order
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a courier to claim an order.
func NewClaimOrderCommand(courierID, orderID kernel.UUID) (ClaimOrderCommand, error) {
	command := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(courierID.Validate(), orderID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}

	command.courierID = courierID
	command.orderID = orderID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// CourierID returns the claiming courier's account ID.
func (c ClaimOrderCommand) CourierID() kernel.UUID { return c.courierID }

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID { return c.orderID }
