package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/ports"
)

// CreateBookingCommandHandler places a booking and books the load when it
// was still Posted. Everything runs under the load lock in one transaction.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.LoadLocker
	logger     *slog.Logger
	recorder   Recorder
}

func NewCreateBookingCommandHandler(
	uowFactory UoWFactory,
	locker ports.LoadLocker,
	obs Observability,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     obs.logger("create_booking_handler"),
		recorder:   obs.recorder(),
	}
}

func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (err error) {
	defer func() { h.recorder.CommandHandled("create_booking", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	var outcome lifecycle.Outcome
	err = h.locker.WithLoadLock(ctx, cmd.LoadID(), func(ctx context.Context) error {
		return withinUoW(ctx, h.uowFactory.Create(), func(uow UoW) error {
			loads := lifecycle.NewLoadLifecycle(uow.LoadRepository(), nil)
			bookings := lifecycle.NewBookingLifecycle(loads, uow.BookingRepository(), nil)

			var err error
			_, outcome, err = bookings.Create(ctx, lifecycle.NewBooking{
				ID:            cmd.BookingID(),
				LoadID:        cmd.LoadID(),
				TransporterID: cmd.TransporterID(),
				ProposedRate:  cmd.ProposedRate(),
				Comment:       cmd.Comment(),
			})
			return err
		})
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Booking created",
		"booking_id", cmd.BookingID().String(),
		"load_id", cmd.LoadID().String(),
		"transporter_id", cmd.TransporterID(),
	)
	reportOutcome(ctx, h.logger, h.recorder, outcome)
	return nil
}
