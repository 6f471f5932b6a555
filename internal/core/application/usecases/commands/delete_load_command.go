package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand removes a load. Its bookings stay in place.
type DeleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteLoadCommand(loadID kernel.UUID) (DeleteLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return DeleteLoadCommand{}, err
	}

	return DeleteLoadCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

func (c DeleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
