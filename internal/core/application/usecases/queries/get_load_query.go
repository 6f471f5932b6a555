package queries

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery retrieves one load by id.
type GetLoadQuery struct {
	loadID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetLoadQuery(loadID kernel.UUID) (GetLoadQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}
	return GetLoadQuery{loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

type GetLoadQueryHandler struct {
	loads ports.LoadRepository
}

func NewGetLoadQueryHandler(loads ports.LoadRepository) GetLoadQueryHandler {
	return GetLoadQueryHandler{loads: loads}
}

// Handle returns the load read model or an ObjectNotFoundError.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadResponse{}, err
	}

	l, err := h.loads.Get(ctx, query.LoadID())
	if err != nil {
		return LoadResponse{}, err
	}
	return toLoadResponse(l), nil
}
