package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel their own
// order. Ownership is proven by the caller's login email, which must match
// the account that placed the order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerEmail string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order on the owning
// customer's behalf.
func NewCancelOrderCommand(orderID kernel.UUID, customerEmail string) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		func() error {
			if strings.TrimSpace(customerEmail) == "" {
				return errs.NewValueIsRequiredError("customer email")
			}
			return nil
		}(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	command.orderID = orderID
	command.customerEmail = strings.ToLower(strings.TrimSpace(customerEmail))
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerEmail returns the caller's login email, lowercased.
func (c CancelOrderCommand) CustomerEmail() string { return c.customerEmail }
