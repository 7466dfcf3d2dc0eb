package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change does not
// follow an edge of the order state machine. It is an expected outcome that
// callers branch on, not a fatal failure.
var ErrInvalidTransition = fmt.Errorf("order status transition is invalid")

// Status represents the lifecycle state of an order. It implements a
// forward-only state machine:
//
//	Pending → InProgress → Preparing → Ready → PickedUp → Delivered
//
// Cancelled is reachable from every non-terminal state (restaurant or admin
// action); CancelledByCustomer only from Pending or InProgress. Delivered,
// Cancelled, and CancelledByCustomer are terminal: no transition is accepted
// out of them.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status right after checkout.
	Pending

	// InProgress means the restaurant has acknowledged the order.
	InProgress

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is prepared and awaiting courier pickup.
	// This is the only status in which a courier may claim the order.
	Ready

	// PickedUp means the claiming courier has collected the order.
	PickedUp

	// Delivered is the terminal happy-path status.
	Delivered

	// Cancelled is the terminal status for restaurant or admin cancellation.
	Cancelled

	// CancelledByCustomer is the terminal status for customer-initiated
	// cancellation, only reachable from Pending or InProgress.
	CancelledByCustomer
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Pending:             "PENDING",
		InProgress:          "IN_PROGRESS",
		Preparing:           "PREPARING",
		Ready:               "READY",
		PickedUp:            "PICKED_UP",
		Delivered:           "DELIVERED",
		Cancelled:           "CANCELLED",
		CancelledByCustomer: "CANCELLED_BY_CUSTOMER",
	}
}

// StatusFromString parses a status name case-insensitively.
// Returns Unknown with an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the canonical upper-case status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if s <= Unknown || s > CancelledByCustomer {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == CancelledByCustomer
}

// IsCancellation reports whether the status is one of the cancelled
// terminal states.
func (s Status) IsCancellation() bool {
	return s == Cancelled || s == CancelledByCustomer
}

// operationalRank orders the happy-path statuses so that forward-only
// progression can be checked by comparison. Cancellation states have no rank.
func operationalRank(s Status) (int, bool) {
	switch s {
	case Pending:
		return 1, true
	case InProgress:
		return 2, true
	case Preparing:
		return 3, true
	case Ready:
		return 4, true
	case PickedUp:
		return 5, true
	case Delivered:
		return 6, true
	default:
		return 0, false
	}
}

// CanTransitionTo reports whether moving from s to next follows an edge of
// the state machine. Happy-path moves must advance exactly one step forward;
// Cancelled is allowed from any non-terminal state; CancelledByCustomer only
// from Pending or InProgress.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}

	switch next {
	case Cancelled:
		return true
	case CancelledByCustomer:
		return s == Pending || s == InProgress
	default:
		from, ok := operationalRank(s)
		if !ok {
			return false
		}
		to, ok := operationalRank(next)
		if !ok {
			return false
		}
		return to == from+1
	}
}

// Transition returns the next status if the move is valid, or
// ErrInvalidTransition (wrapped with both endpoints) otherwise.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
