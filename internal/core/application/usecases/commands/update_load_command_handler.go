package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/ports"
)

// UpdateLoadCommandHandler edits a load under its lock.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	locker     ports.LoadLocker
	logger     *slog.Logger
	recorder   Recorder
}

func NewUpdateLoadCommandHandler(
	uowFactory LoadUoWFactory,
	locker ports.LoadLocker,
	obs Observability,
) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     obs.logger("update_load_handler"),
		recorder:   obs.recorder(),
	}
}

func (h UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) (err error) {
	defer func() { h.recorder.CommandHandled("update_load", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	err = h.locker.WithLoadLock(ctx, cmd.LoadID(), func(ctx context.Context) error {
		return withinUoW(ctx, h.uowFactory.Create(), func(uow LoadUoW) error {
			_, err := lifecycle.NewLoadLifecycle(uow.LoadRepository(), nil).Update(ctx, cmd.LoadID(), cmd.Details())
			return err
		})
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Load updated", "load_id", cmd.LoadID().String())
	return nil
}
