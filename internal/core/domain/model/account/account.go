package account

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrAccountIsNotConstructed is returned when using an Account that was
	// not created via one of the New...Account constructors.
	ErrAccountIsNotConstructed = errors.New("Account must be created via a role constructor")

	// ErrAccountBlocked is returned by gate checks when the account is
	// suspended or banned.
	ErrAccountBlocked = errors.New("account is suspended or banned")

	// ErrRestaurantUnavailable is returned by gate checks when a restaurant
	// is unapproved, blocked, or closed.
	ErrRestaurantUnavailable = errors.New("restaurant is currently unavailable")

	// ErrRoleMismatch is returned when a role-specific operation is invoked
	// on an account of a different role.
	ErrRoleMismatch = errors.New("operation is not valid for this account role")

	// ErrAdminCannotBeBlocked rejects suspending or banning admin accounts.
	ErrAdminCannotBeBlocked = errors.New("admin accounts cannot be suspended or banned")
)

// CustomerProfile is the Customer-role payload.
type CustomerProfile struct {
	Address  string
	City     string
	District string
}

// RestaurantProfile is the RestaurantOwner-role payload. Approved is flipped
// by the admin after review; Open reflects business hours. Both gate whether
// the restaurant's items can be ordered.
type RestaurantProfile struct {
	Address  string
	City     string
	District string
	Approved bool
	Open     bool
}

// CourierProfile is the Courier-role payload. AffiliatedRestaurantID is the
// courier's single active affiliation, nil until a restaurant accepts an
// affiliation request.
type CourierProfile struct {
	Available              bool
	AffiliatedRestaurantID *kernel.UUID
}

// Account is the tagged union over all marketplace participants. The role
// determines which profile payload is set; exactly one payload is non-nil
// per account (none for admins).
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	role         Role
	status       Status

	customer   *CustomerProfile
	restaurant *RestaurantProfile
	courier    *CourierProfile

	guard guard.ConstructorGuard
}

func newAccount(id kernel.UUID, name, email, passwordHash, phone string, role Role) (*Account, error) {
	a := &Account{
		role:   role,
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	a.phone = phone
	return a, nil
}

// NewCustomerAccount creates an active customer account.
func NewCustomerAccount(id kernel.UUID, name, email, passwordHash, phone string, profile CustomerProfile) (*Account, error) {
	a, err := newAccount(id, name, email, passwordHash, phone, Customer)
	if err != nil {
		return nil, err
	}
	a.customer = &profile
	return a, nil
}

// NewRestaurantAccount creates a restaurant account. New restaurants start
// unapproved and closed; their items are not orderable until the admin
// approves them and the owner opens the restaurant.
func NewRestaurantAccount(id kernel.UUID, name, email, passwordHash, phone string, profile RestaurantProfile) (*Account, error) {
	a, err := newAccount(id, name, email, passwordHash, phone, RestaurantOwner)
	if err != nil {
		return nil, err
	}
	a.restaurant = &profile
	return a, nil
}

// NewCourierAccount creates a courier account with no affiliation.
func NewCourierAccount(id kernel.UUID, name, email, passwordHash, phone string) (*Account, error) {
	a, err := newAccount(id, name, email, passwordHash, phone, Courier)
	if err != nil {
		return nil, err
	}
	a.courier = &CourierProfile{}
	return a, nil
}

// NewAdminAccount creates an admin account.
func NewAdminAccount(id kernel.UUID, name, email, passwordHash, phone string) (*Account, error) {
	return newAccount(id, name, email, passwordHash, phone, Admin)
}

// RestoreAccount reconstructs an Account from persistence. Exactly the
// payload matching the role may be non-nil.
func RestoreAccount(
	id kernel.UUID,
	name, email, passwordHash, phone string,
	role Role,
	status Status,
	customer *CustomerProfile,
	restaurant *RestaurantProfile,
	courier *CourierProfile,
) (*Account, error) {
	a, err := newAccount(id, name, email, passwordHash, phone, role)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(role.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	a.status = status
	a.customer = customer
	a.restaurant = restaurant
	a.courier = courier
	return a, nil
}

// Validate ensures the Account was created via a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID { return a.id }

// Name returns the display name.
func (a *Account) Name() string { return a.name }

// Email returns the login email.
func (a *Account) Email() string { return a.email }

// PasswordHash returns the bcrypt hash of the password.
func (a *Account) PasswordHash() string { return a.passwordHash }

// Phone returns the contact phone.
func (a *Account) Phone() string { return a.phone }

// Role returns the account's role tag.
func (a *Account) Role() Role { return a.role }

// Status returns the account's standing.
func (a *Account) Status() Status { return a.status }

// IsBlocked reports whether the account is suspended or banned.
func (a *Account) IsBlocked() bool { return a.status.IsBlocked() }

// EnsureActive is the gate check for customers and couriers: it fails with
// ErrAccountBlocked when the account is suspended or banned.
func (a *Account) EnsureActive() error {
	if a.IsBlocked() {
		return fmt.Errorf("%w: status is %s", ErrAccountBlocked, a.status)
	}
	return nil
}

// EnsureOrderable is the gate check for restaurants accepting new basket
// items and orders: the restaurant must be approved, not blocked, and open.
func (a *Account) EnsureOrderable() error {
	profile, err := a.Restaurant()
	if err != nil {
		return err
	}
	if a.IsBlocked() {
		return fmt.Errorf("%w: status is %s", ErrRestaurantUnavailable, a.status)
	}
	if !profile.Approved {
		return fmt.Errorf("%w: not approved", ErrRestaurantUnavailable)
	}
	if !profile.Open {
		return fmt.Errorf("%w: currently closed", ErrRestaurantUnavailable)
	}
	return nil
}

// SetStatus changes the account standing. Admin accounts cannot be
// suspended or banned.
func (a *Account) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if a.role == Admin && status.IsBlocked() {
		return ErrAdminCannotBeBlocked
	}
	a.status = status
	return nil
}

// Customer returns the customer payload or ErrRoleMismatch.
func (a *Account) Customer() (*CustomerProfile, error) {
	if a.role != Customer || a.customer == nil {
		return nil, fmt.Errorf("%w: %s is not a customer", ErrRoleMismatch, a.role)
	}
	return a.customer, nil
}

// Restaurant returns the restaurant payload or ErrRoleMismatch.
func (a *Account) Restaurant() (*RestaurantProfile, error) {
	if a.role != RestaurantOwner || a.restaurant == nil {
		return nil, fmt.Errorf("%w: %s is not a restaurant", ErrRoleMismatch, a.role)
	}
	return a.restaurant, nil
}

// Courier returns the courier payload or ErrRoleMismatch.
func (a *Account) Courier() (*CourierProfile, error) {
	if a.role != Courier || a.courier == nil {
		return nil, fmt.Errorf("%w: %s is not a courier", ErrRoleMismatch, a.role)
	}
	return a.courier, nil
}

// Approve marks a restaurant as approved by the admin.
func (a *Account) Approve() error {
	profile, err := a.Restaurant()
	if err != nil {
		return err
	}
	profile.Approved = true
	return nil
}

// SetOpen toggles a restaurant's open flag.
func (a *Account) SetOpen(open bool) error {
	profile, err := a.Restaurant()
	if err != nil {
		return err
	}
	profile.Open = open
	return nil
}

// AffiliateWith records the courier's active affiliation, replacing any
// prior one. The superseded affiliation request record is transitioned
// separately by the affiliation registry.
func (a *Account) AffiliateWith(restaurantID kernel.UUID) error {
	profile, err := a.Courier()
	if err != nil {
		return err
	}
	if err = restaurantID.Validate(); err != nil {
		return err
	}
	profile.AffiliatedRestaurantID = &restaurantID
	return nil
}

// ClearAffiliation removes the courier's active affiliation.
func (a *Account) ClearAffiliation() error {
	profile, err := a.Courier()
	if err != nil {
		return err
	}
	profile.AffiliatedRestaurantID = nil
	return nil
}

// SetAvailable toggles a courier's availability flag.
func (a *Account) SetAvailable(available bool) error {
	profile, err := a.Courier()
	if err != nil {
		return err
	}
	profile.Available = available
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(trimmed, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	a.email = strings.ToLower(trimmed)
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = passwordHash
	return nil
}
