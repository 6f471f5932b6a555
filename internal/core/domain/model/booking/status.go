package booking

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
)

// Status is the decision state of a booking. Any valid status may follow any
// other.
type Status int

const (
	// Unknown catches uninitialized values and is never valid.
	Unknown Status = iota

	// Pending is the initial status, awaiting the shipper's decision.
	Pending

	// Accepted means the shipper took this bid. Accepting one booking rejects
	// the pending siblings on the same load.
	Accepted

	// Rejected means the bid was declined.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, Accepted, Rejected}
}

// ParseStatus converts the wire name (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a booking status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
