package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a shipper posting a new load.
//
// Example:
//
//	cmd, err := NewCreateLoadCommand(kernel.NewUUID(), details)
//	if err != nil {
//	    return fmt.Errorf("invalid load data: %w", err)
//	}
//
//	handler := NewCreateLoadCommandHandler(uowFactory, obs)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to post load: %w", err)
//	}
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	details load.Details

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand validates the identifier and the facility. The rest
// of the details is checked by the Load aggregate.
func NewCreateLoadCommand(loadID kernel.UUID, details load.Details) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDetails(details),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateLoadCommand) Details() load.Details {
	return c.details
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setDetails(details load.Details) error {
	if err := details.Facility.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
