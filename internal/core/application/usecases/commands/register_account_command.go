package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// RegisterAccountCommand represents a request to create a marketplace account
// of any role. The profile fields are interpreted per role: customers record
// their delivery address, restaurants their venue address.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	name      string
	email     string
	password  string
	phone     string
	role      account.Role
	address   string
	city      string
	district  string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates the account ID, role, and credential shape; uniqueness of the
// email is checked by the handler against storage.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name, email, password, phone string,
	role account.Role,
	address, city, district string,
) (RegisterAccountCommand, error) {
	command := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
		command.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	command.phone = phone
	command.address = address
	command.city = city
	command.district = district
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier assigned to the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID { return c.accountID }

// Name returns the display name.
func (c RegisterAccountCommand) Name() string { return c.name }

// Email returns the login email.
func (c RegisterAccountCommand) Email() string { return c.email }

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string { return c.password }

// Phone returns the contact phone.
func (c RegisterAccountCommand) Phone() string { return c.phone }

// Role returns the requested account role.
func (c RegisterAccountCommand) Role() account.Role { return c.role }

// Address returns the role-specific street address.
func (c RegisterAccountCommand) Address() string { return c.address }

// City returns the role-specific city.
func (c RegisterAccountCommand) City() string { return c.city }

// District returns the role-specific district.
func (c RegisterAccountCommand) District() string { return c.district }

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
