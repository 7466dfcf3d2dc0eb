package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order to the next
// lifecycle status. The caller's role decides which statuses are reachable;
// the state machine decides whether the step itself is legal.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	orderID  kernel.UUID
	next     order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order's status.
func NewAdvanceOrderCommand(callerID, orderID kernel.UUID, next order.Status) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		callerID.Validate(),
		orderID.Validate(),
		next.Validate(),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	command.callerID = callerID
	command.orderID = orderID
	command.next = next
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// CallerID returns the account requesting the transition.
func (c AdvanceOrderCommand) CallerID() kernel.UUID { return c.callerID }

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Next returns the requested status.
func (c AdvanceOrderCommand) Next() order.Status { return c.next }
