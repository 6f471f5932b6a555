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

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a transporter bidding on a load.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(kernel.NewUUID(), loadID, "TRANS001", decimal.NewFromInt(50000), "")
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // the load does not exist
//	case errors.Is(err, errs.ErrBusinessRuleViolation):
//	    // the load is cancelled or the transporter already bid on it
//	}
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID     kernel.UUID
	loadID        kernel.UUID
	transporterID string
	proposedRate  decimal.Decimal
	comment       string

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(
	bookingID, loadID kernel.UUID,
	transporterID string,
	proposedRate decimal.Decimal,
	comment string,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setLoadID(loadID),
		cmd.setTransporterID(transporterID),
		cmd.setProposedRate(proposedRate),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c CreateBookingCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateBookingCommand) TransporterID() string {
	return c.transporterID
}

func (c CreateBookingCommand) ProposedRate() decimal.Decimal {
	return c.proposedRate
}

func (c CreateBookingCommand) Comment() string {
	return c.comment
}

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}

	c.loadID = id
	return nil
}

func (c *CreateBookingCommand) setTransporterID(transporterID string) error {
	transporterID = strings.TrimSpace(transporterID)
	if transporterID == "" {
		return booking.ErrTransporterIDIsRequired
	}

	c.transporterID = transporterID
	return nil
}

func (c *CreateBookingCommand) setProposedRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return ErrProposedRateIsInvalid
	}

	c.proposedRate = rate
	return nil
}
