package load

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
)

// Status represents the marketplace state of a load.
//
//	Posted ──> Booked ──> Posted (all bookings rejected)
//	   │          │
//	   └──────────┴──> Cancelled (last booking deleted)
//
// The diagram shows what the booking lifecycle drives; the aggregate itself
// accepts any valid status.
type Status int

const (
	// Unknown catches uninitialized values and is never valid.
	Unknown Status = iota

	// Posted is the initial status. The load is open for bids.
	Posted

	// Booked means at least one booking exists that is not rejected.
	Booked

	// Cancelled means the last booking was deleted. New bookings are refused.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Posted:    "POSTED",
		Booked:    "BOOKED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:    "POSTED",
		Booked:    "BOOKED",
		Cancelled: "CANCELLED",
	}
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Posted, Booked, Cancelled}
}

// ParseStatus converts the wire name (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a load status", s))
}

// Validate reports whether s is one of Posted, Booked or Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "POSTED".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AcceptsBookings is false only for Cancelled loads.
func (s Status) AcceptsBookings() bool {
	return s == Posted || s == Booked
}
