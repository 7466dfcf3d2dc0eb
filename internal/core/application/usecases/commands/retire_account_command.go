package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRetireAccountCommandIsNotConstructed = errors.New(
	"RetireAccountCommand must be created via NewRetireAccountCommand constructor",
)

// RetireAccountCommand represents the permanent removal of an account. Only
// the account owner or an admin may retire an account.
type RetireAccountCommand struct { //nolint:recvcheck //using for validation
	callerID  kernel.UUID
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetireAccountCommand creates a command to retire an account.
func NewRetireAccountCommand(callerID, accountID kernel.UUID) (RetireAccountCommand, error) {
	command := RetireAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(callerID.Validate(), accountID.Validate()); err != nil {
		return RetireAccountCommand{}, err
	}

	command.callerID = callerID
	command.accountID = accountID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RetireAccountCommand) Validate() error {
	return c.guard.Validate(ErrRetireAccountCommandIsNotConstructed)
}

// CallerID returns the account requesting the retirement.
func (c RetireAccountCommand) CallerID() kernel.UUID { return c.callerID }

// AccountID returns the account to retire.
func (c RetireAccountCommand) AccountID() kernel.UUID { return c.accountID }
