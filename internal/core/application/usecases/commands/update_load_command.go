package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// UpdateLoadCommand replaces the shipper-editable attributes of a load.
// The status cannot be changed this way.
type UpdateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	details load.Details

	guard guard.ConstructorGuard
}

func NewUpdateLoadCommand(loadID kernel.UUID, details load.Details) (UpdateLoadCommand, error) {
	cmd := UpdateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDetails(details),
	); err != nil {
		return UpdateLoadCommand{}, err
	}

	return cmd, nil
}

func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

func (c UpdateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c UpdateLoadCommand) Details() load.Details {
	return c.details
}

func (c *UpdateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *UpdateLoadCommand) setDetails(details load.Details) error {
	if err := details.Facility.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
