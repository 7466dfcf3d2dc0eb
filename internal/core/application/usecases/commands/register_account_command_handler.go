package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the registration email is
// already taken by another account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterAccountCommandHandler handles account registration for all roles.
// Hashes the password with bcrypt before anything touches storage; the
// plaintext never leaves the command.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Rejects duplicate emails with
// ErrEmailAlreadyRegistered. New restaurant accounts start unapproved and
// closed; new couriers start unaffiliated.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, command RegisterAccountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newAccount, err := buildAccount(command, string(hash))
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, newAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildAccount(command RegisterAccountCommand, passwordHash string) (*account.Account, error) {
	switch command.Role() {
	case account.Customer:
		return account.NewCustomerAccount(
			command.AccountID(), command.Name(), command.Email(), passwordHash, command.Phone(),
			account.CustomerProfile{
				Address:  command.Address(),
				City:     command.City(),
				District: command.District(),
			},
		)
	case account.RestaurantOwner:
		return account.NewRestaurantAccount(
			command.AccountID(), command.Name(), command.Email(), passwordHash, command.Phone(),
			account.RestaurantProfile{
				Address:  command.Address(),
				City:     command.City(),
				District: command.District(),
			},
		)
	case account.Courier:
		return account.NewCourierAccount(
			command.AccountID(), command.Name(), command.Email(), passwordHash, command.Phone(),
		)
	case account.Admin:
		return account.NewAdminAccount(
			command.AccountID(), command.Name(), command.Email(), passwordHash, command.Phone(),
		)
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}
