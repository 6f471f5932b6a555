package services

import (
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"
)

var (
	// ErrLoadIsCancelled is returned when a booking is requested on a cancelled load.
	ErrLoadIsCancelled = errs.NewBusinessRuleViolationError("cannot create booking for cancelled load")
	// ErrDuplicateBooking is returned when the transporter already has a booking on the load.
	ErrDuplicateBooking = errs.NewBusinessRuleViolationError("transporter has already booked this load")
)

// UpdateOutcome is what the booking policy decided after a booking changed.
type UpdateOutcome struct {
	// Rejected are the sibling bookings that moved from Pending to Rejected.
	// They are already mutated and must be persisted.
	Rejected []*booking.Booking

	// ReopenLoad is true when every booking of the load is now Rejected and the
	// load must go back to Posted.
	ReopenLoad bool
}

// BookingPolicy holds the cross-aggregate rules between a load and its bookings.
// It is pure: callers read the current state, ask the policy, and persist the
// result inside one unit of work.
//
// Rules:
//   - a cancelled load accepts no new bookings
//   - a transporter books a load at most once (checked on create only)
//   - the first booking moves a posted load to Booked
//   - accepting a booking rejects its pending siblings
//   - when every booking is rejected the load returns to Posted
//   - deleting the last booking cancels the load
type BookingPolicy struct{}

func NewBookingPolicy() BookingPolicy {
	return BookingPolicy{}
}

// CheckCreate validates a new booking request against the target load.
// alreadyBooked tells whether the transporter already has a booking on it.
func (BookingPolicy) CheckCreate(target *load.Load, alreadyBooked bool) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !target.Status().AcceptsBookings() {
		return ErrLoadIsCancelled
	}
	if alreadyBooked {
		return ErrDuplicateBooking
	}
	return nil
}

// LoadStatusAfterCreate returns the status the load must take once a booking
// was added, and whether it differs from the current one.
func (BookingPolicy) LoadStatusAfterCreate(current load.Status) (load.Status, bool) {
	if current == load.Posted {
		return load.Booked, true
	}
	return current, false
}

// ReconcileAfterUpdate applies the consequences of changed moving from
// previous to its current status. siblings are all bookings of the same load,
// freshly read after changed was saved, and may include changed itself.
//
// Only the delta of changed is considered. Siblings rejected here do not
// trigger another reconciliation.
func (BookingPolicy) ReconcileAfterUpdate(
	changed *booking.Booking,
	previous booking.Status,
	siblings []*booking.Booking,
) UpdateOutcome {
	var outcome UpdateOutcome

	if changed.Status() == booking.Accepted && previous != booking.Accepted {
		for _, sibling := range siblings {
			if sibling.IsEqual(changed) || !sibling.IsPending() {
				continue
			}
			sibling.Reject()
			outcome.Rejected = append(outcome.Rejected, sibling)
		}
	}

	if changed.Status() == booking.Rejected {
		outcome.ReopenLoad = allRejected(siblings)
	}

	return outcome
}

// LoadStatusAfterDelete returns the load status implied by the bookings left
// after a deletion, and false when the load must stay as it is.
func (BookingPolicy) LoadStatusAfterDelete(remaining []*booking.Booking) (load.Status, bool) {
	if len(remaining) == 0 {
		return load.Cancelled, true
	}
	if allRejected(remaining) {
		return load.Posted, true
	}
	return load.Unknown, false
}

func allRejected(bookings []*booking.Booking) bool {
	if len(bookings) == 0 {
		return false
	}
	for _, b := range bookings {
		if !b.IsRejected() {
			return false
		}
	}
	return true
}
