package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrApproveRestaurantCommandIsNotConstructed = errors.New(
	"ApproveRestaurantCommand must be created via NewApproveRestaurantCommand constructor",
)

// ApproveRestaurantCommand represents an admin approving a restaurant after
// review, making its menu orderable once the owner opens it.
type ApproveRestaurantCommand struct { //nolint:recvcheck //using for validation
	adminID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRestaurantCommand creates a command to approve a restaurant.
func NewApproveRestaurantCommand(adminID, restaurantID kernel.UUID) (ApproveRestaurantCommand, error) {
	command := ApproveRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(adminID.Validate(), restaurantID.Validate()); err != nil {
		return ApproveRestaurantCommand{}, err
	}

	command.adminID = adminID
	command.restaurantID = restaurantID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrApproveRestaurantCommandIsNotConstructed)
}

// AdminID returns the acting admin's account ID.
func (c ApproveRestaurantCommand) AdminID() kernel.UUID { return c.adminID }

// RestaurantID returns the restaurant to approve.
func (c ApproveRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
