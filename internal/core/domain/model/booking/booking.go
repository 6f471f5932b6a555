package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking was not built by NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
	// ErrTransporterIDIsRequired is returned for a blank transporter identifier.
	ErrTransporterIDIsRequired = errs.NewValueIsRequiredError("transporterId")
)

// Booking is a transporter's bid on a load.
//
// Invariants:
//   - id and loadId are valid UUIDs; loadId never changes
//   - transporterId is not blank
//   - proposedRate is strictly positive
//   - status is one of Pending, Accepted, Rejected
type Booking struct {
	id            kernel.UUID
	loadID        kernel.UUID
	transporterID string
	proposedRate  decimal.Decimal
	comment       string
	status        Status
	requestedAt   time.Time
	guard         guard.ConstructorGuard
}

// NewBooking creates a Pending booking on the given load.
func NewBooking(
	id, loadID kernel.UUID,
	transporterID string,
	proposedRate decimal.Decimal,
	comment string,
	requestedAt time.Time,
) (*Booking, error) {
	return RestoreBooking(id, loadID, transporterID, proposedRate, comment, Pending, requestedAt)
}

// RestoreBooking rebuilds a booking read from storage, keeping its persisted status.
func RestoreBooking(
	id, loadID kernel.UUID,
	transporterID string,
	proposedRate decimal.Decimal,
	comment string,
	status Status,
	requestedAt time.Time,
) (*Booking, error) {
	b := &Booking{
		guard: guard.NewConstructorGuard(),
	}

	var requestedAtErr error
	if requestedAt.IsZero() {
		requestedAtErr = errs.NewValueIsRequiredError("requestedAt")
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.Revise(transporterID, proposedRate, comment),
		status.Validate(),
		requestedAtErr,
	); err != nil {
		return nil, err
	}

	b.status = status
	b.requestedAt = requestedAt.UTC().Truncate(time.Microsecond)
	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) LoadID() kernel.UUID {
	return b.loadID
}

func (b *Booking) TransporterID() string {
	return b.transporterID
}

func (b *Booking) ProposedRate() decimal.Decimal {
	return b.proposedRate
}

func (b *Booking) Comment() string {
	return b.comment
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) RequestedAt() time.Time {
	return b.requestedAt
}

// Revise replaces the transporter, rate and comment of the bid. On error the
// booking is unchanged.
func (b *Booking) Revise(transporterID string, proposedRate decimal.Decimal, comment string) error {
	transporterID = strings.TrimSpace(transporterID)

	var errList []error
	if transporterID == "" {
		errList = append(errList, ErrTransporterIDIsRequired)
	}
	if !proposedRate.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"proposedRate is invalid", fmt.Errorf("%s is not greater than 0", proposedRate)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	b.transporterID = transporterID
	b.proposedRate = proposedRate
	b.comment = comment
	return nil
}

// ChangeStatus overwrites the status and returns the previous one.
func (b *Booking) ChangeStatus(status Status) (Status, error) {
	if err := status.Validate(); err != nil {
		return b.status, err
	}
	previous := b.status
	b.status = status
	return previous, nil
}

// Reject is shorthand for ChangeStatus(Rejected), used for cascading rejections.
func (b *Booking) Reject() {
	b.status = Rejected
}

func (b *Booking) IsPending() bool {
	return b.status == Pending
}

func (b *Booking) IsRejected() bool {
	return b.status == Rejected
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	b.loadID = id
	return nil
}
