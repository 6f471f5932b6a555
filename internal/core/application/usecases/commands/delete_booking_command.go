package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

var ErrDeleteBookingCommandIsNotConstructed = errors.New(
	"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
)

// DeleteBookingCommand withdraws a booking. The load is cancelled when no
// booking is left and reopened when only rejected ones remain.
type DeleteBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteBookingCommand(bookingID kernel.UUID) (DeleteBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return DeleteBookingCommand{}, err
	}

	return DeleteBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

func (c DeleteBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
