package affiliation

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// RequestStatus is the lifecycle state of a courier-restaurant affiliation
// request.
//
//	Pending ──> Accepted ──> Superseded
//	    │
//	    └─────> Rejected
//
// Superseded marks a previously accepted affiliation that was replaced when
// the courier re-affiliated with another restaurant, so at most one request
// row per courier is ever in Accepted.
type RequestStatus int

const (
	UnknownRequestStatus RequestStatus = iota
	Pending
	Accepted
	Rejected
	Superseded
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		UnknownRequestStatus: "UNKNOWN",
		Pending:              "PENDING",
		Accepted:             "ACCEPTED",
		Rejected:             "REJECTED",
		Superseded:           "SUPERSEDED",
	}
}

// RequestStatusFromString parses a request status name case-insensitively.
func RequestStatusFromString(s string) (RequestStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getRequestStatusStrings() {
		if status != UnknownRequestStatus && name == normalized {
			return status, nil
		}
	}
	return UnknownRequestStatus, errs.NewValueIsInvalidErrorWithCause("request status",
		fmt.Errorf("%q is not a valid request status", s))
}

// String returns the canonical upper-case status name.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the status is one of the defined values.
func (s RequestStatus) Validate() error {
	if s < Pending || s > Superseded {
		return errs.NewValueIsInvalidErrorWithCause("request status",
			fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}
