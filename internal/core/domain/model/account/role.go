package account

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Role tags the variant of an Account. Each role carries its own profile
// payload on the aggregate; dispatch is by matching the tag, never by
// runtime type checks.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Courier
	RestaurantOwner
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:     "UNKNOWN",
		Customer:        "CUSTOMER",
		Courier:         "COURIER",
		RestaurantOwner: "RESTAURANT",
		Admin:           "ADMIN",
	}
}

// RoleFromString parses a role name case-insensitively.
func RoleFromString(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the canonical upper-case role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if r < Customer || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
