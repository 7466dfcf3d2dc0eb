package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetAccountStatusCommandIsNotConstructed = errors.New(
	"SetAccountStatusCommand must be created via NewSetAccountStatusCommand constructor",
)

// SetAccountStatusCommand represents an admin's decision to change an
// account's standing.
type SetAccountStatusCommand struct { //nolint:recvcheck //using for validation
	adminID   kernel.UUID
	accountID kernel.UUID
	status    account.Status

	guard guard.ConstructorGuard
}

// NewSetAccountStatusCommand creates a command to change an account's status.
func NewSetAccountStatusCommand(adminID, accountID kernel.UUID, status account.Status) (SetAccountStatusCommand, error) {
	command := SetAccountStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adminID.Validate(),
		accountID.Validate(),
		status.Validate(),
	); err != nil {
		return SetAccountStatusCommand{}, err
	}

	command.adminID = adminID
	command.accountID = accountID
	command.status = status
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAccountStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetAccountStatusCommandIsNotConstructed)
}

// AdminID returns the acting admin's account ID.
func (c SetAccountStatusCommand) AdminID() kernel.UUID { return c.adminID }

// AccountID returns the account whose status changes.
func (c SetAccountStatusCommand) AccountID() kernel.UUID { return c.accountID }

// Status returns the new account standing.
func (c SetAccountStatusCommand) Status() account.Status { return c.status }
