package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/lifecycle"
)

// CreateLoadCommandHandler stores a new load in Posted status.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	logger     *slog.Logger
	recorder   Recorder
}

func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory, obs Observability) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		logger:     obs.logger("create_load_handler"),
		recorder:   obs.recorder(),
	}
}

// Handle creates the load. A fresh id cannot collide with concurrent
// operations, so no load lock is taken.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) (err error) {
	defer func() { h.recorder.CommandHandled("create_load", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	err = withinUoW(ctx, h.uowFactory.Create(), func(uow LoadUoW) error {
		_, err := lifecycle.NewLoadLifecycle(uow.LoadRepository(), nil).Create(ctx, cmd.LoadID(), cmd.Details())
		return err
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Load posted",
		"load_id", cmd.LoadID().String(),
		"shipper_id", cmd.Details().ShipperID,
	)
	return nil
}
