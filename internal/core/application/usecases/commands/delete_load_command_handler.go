package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/ports"
)

// DeleteLoadCommandHandler removes a load under its lock and warns about
// the bookings it leaves behind.
type DeleteLoadCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.LoadLocker
	logger     *slog.Logger
	recorder   Recorder
}

func NewDeleteLoadCommandHandler(
	uowFactory UoWFactory,
	locker ports.LoadLocker,
	obs Observability,
) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     obs.logger("delete_load_handler"),
		recorder:   obs.recorder(),
	}
}

func (h DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) (err error) {
	defer func() { h.recorder.CommandHandled("delete_load", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	var orphaned int
	err = h.locker.WithLoadLock(ctx, cmd.LoadID(), func(ctx context.Context) error {
		return withinUoW(ctx, h.uowFactory.Create(), func(uow UoW) error {
			if err := lifecycle.NewLoadLifecycle(uow.LoadRepository(), nil).Delete(ctx, cmd.LoadID()); err != nil {
				return err
			}

			left, err := uow.BookingRepository().ListByLoadID(ctx, cmd.LoadID())
			if err != nil {
				return err
			}
			orphaned = len(left)
			return nil
		})
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Load deleted", "load_id", cmd.LoadID().String())
	if orphaned > 0 {
		h.logger.WarnContext(ctx, "Load deleted with bookings still referencing it",
			"load_id", cmd.LoadID().String(),
			"bookings", orphaned,
		)
	}
	return nil
}
