package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/ports"
)

// UpdateBookingCommandHandler revises a booking and runs the sibling
// consistency pass under the lock of the booking's load.
type UpdateBookingCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.LoadLocker
	logger     *slog.Logger
	recorder   Recorder
}

func NewUpdateBookingCommandHandler(
	uowFactory UoWFactory,
	locker ports.LoadLocker,
	obs Observability,
) UpdateBookingCommandHandler {
	return UpdateBookingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     obs.logger("update_booking_handler"),
		recorder:   obs.recorder(),
	}
}

func (h UpdateBookingCommandHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) (err error) {
	defer func() { h.recorder.CommandHandled("update_booking", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	loadID, err := bookingLoadID(ctx, h.uowFactory, cmd.BookingID())
	if err != nil {
		return err
	}

	changes := lifecycle.BookingChanges{
		TransporterID: cmd.TransporterID(),
		ProposedRate:  cmd.ProposedRate(),
		Comment:       cmd.Comment(),
	}
	if status, ok := cmd.Status(); ok {
		changes.Status = &status
	}

	var outcome lifecycle.Outcome
	err = h.locker.WithLoadLock(ctx, loadID, func(ctx context.Context) error {
		return withinUoW(ctx, h.uowFactory.Create(), func(uow UoW) error {
			loads := lifecycle.NewLoadLifecycle(uow.LoadRepository(), nil)
			bookings := lifecycle.NewBookingLifecycle(loads, uow.BookingRepository(), nil)

			var err error
			_, outcome, err = bookings.Update(ctx, cmd.BookingID(), changes)
			return err
		})
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Booking updated",
		"booking_id", cmd.BookingID().String(),
		"load_id", loadID.String(),
	)
	reportOutcome(ctx, h.logger, h.recorder, outcome)
	return nil
}
