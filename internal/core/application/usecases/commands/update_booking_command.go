package commands

import (
	"errors"
	"strings"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateBookingCommandIsNotConstructed = errors.New(
		"UpdateBookingCommand must be created via NewUpdateBookingCommand constructor",
	)
	ErrProposedRateIsInvalid = errs.NewValueIsInvalidError("proposedRate")
)

// UpdateBookingCommand revises a booking. A nil status keeps the current one.
// Accepting a booking rejects its pending siblings; rejecting the last open
// one reopens the load.
type UpdateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID     kernel.UUID
	transporterID string
	proposedRate  decimal.Decimal
	comment       string
	status        *booking.Status

	guard guard.ConstructorGuard
}

func NewUpdateBookingCommand(
	bookingID kernel.UUID,
	transporterID string,
	proposedRate decimal.Decimal,
	comment string,
	status *booking.Status,
) (UpdateBookingCommand, error) {
	cmd := UpdateBookingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setTransporterID(transporterID),
		cmd.setProposedRate(proposedRate),
		cmd.setStatus(status),
	); err != nil {
		return UpdateBookingCommand{}, err
	}

	return cmd, nil
}

func (c UpdateBookingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingCommandIsNotConstructed)
}

func (c UpdateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c UpdateBookingCommand) TransporterID() string {
	return c.transporterID
}

func (c UpdateBookingCommand) ProposedRate() decimal.Decimal {
	return c.proposedRate
}

func (c UpdateBookingCommand) Comment() string {
	return c.comment
}

// Status returns the requested status, or false when it stays unchanged.
func (c UpdateBookingCommand) Status() (booking.Status, bool) {
	if c.status == nil {
		return booking.Unknown, false
	}
	return *c.status, true
}

func (c *UpdateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.bookingID = id
	return nil
}

func (c *UpdateBookingCommand) setTransporterID(transporterID string) error {
	transporterID = strings.TrimSpace(transporterID)
	if transporterID == "" {
		return booking.ErrTransporterIDIsRequired
	}

	c.transporterID = transporterID
	return nil
}

func (c *UpdateBookingCommand) setProposedRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return ErrProposedRateIsInvalid
	}

	c.proposedRate = rate
	return nil
}

func (c *UpdateBookingCommand) setStatus(status *booking.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	c.status = &s
	return nil
}
