package account

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the account's standing, the gate the fulfillment core queries
// before allowing cart mutation, order placement, or order acceptance.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Suspended
	Banned
)

func getAccountStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Active:        "ACTIVE",
		Suspended:     "SUSPENDED",
		Banned:        "BANNED",
	}
}

// StatusFromString parses an account status name case-insensitively.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getAccountStatusStrings() {
		if status != UnknownStatus && name == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("account status",
		fmt.Errorf("%q is not a valid account status", s))
}

// String returns the canonical upper-case status name.
func (s Status) String() string {
	if str, ok := getAccountStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if s < Active || s > Banned {
		return errs.NewValueIsInvalidErrorWithCause("account status",
			fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

// IsBlocked reports whether the account is suspended or banned.
func (s Status) IsBlocked() bool {
	return s == Suspended || s == Banned
}
