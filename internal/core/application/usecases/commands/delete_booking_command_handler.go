package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/ports"
)

type DeleteBookingCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.LoadLocker
	logger     *slog.Logger
	recorder   Recorder
}

func NewDeleteBookingCommandHandler(
	uowFactory UoWFactory,
	locker ports.LoadLocker,
	obs Observability,
) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     obs.logger("delete_booking_handler"),
		recorder:   obs.recorder(),
	}
}

func (h DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) (err error) {
	defer func() { h.recorder.CommandHandled("delete_booking", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	loadID, err := bookingLoadID(ctx, h.uowFactory, cmd.BookingID())
	if err != nil {
		return err
	}

	var outcome lifecycle.Outcome
	err = h.locker.WithLoadLock(ctx, loadID, func(ctx context.Context) error {
		return withinUoW(ctx, h.uowFactory.Create(), func(uow UoW) error {
			loads := lifecycle.NewLoadLifecycle(uow.LoadRepository(), nil)
			bookings := lifecycle.NewBookingLifecycle(loads, uow.BookingRepository(), nil)

			var err error
			outcome, err = bookings.Delete(ctx, cmd.BookingID())
			return err
		})
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Booking deleted",
		"booking_id", cmd.BookingID().String(),
		"load_id", loadID.String(),
	)
	reportOutcome(ctx, h.logger, h.recorder, outcome)
	return nil
}
