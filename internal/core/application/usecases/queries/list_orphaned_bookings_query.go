package queries

import (
	"context"
	"errors"

	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/guard"
)

var ErrListOrphanedBookingsQueryIsNotConstructed = errors.New(
	"ListOrphanedBookingsQuery must be created via NewListOrphanedBookingsQuery constructor",
)

// ListOrphanedBookingsQuery finds bookings whose load was deleted.
type ListOrphanedBookingsQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrphanedBookingsQuery() ListOrphanedBookingsQuery {
	return ListOrphanedBookingsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrphanedBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListOrphanedBookingsQueryIsNotConstructed)
}

type ListOrphanedBookingsQueryHandler struct {
	bookings ports.BookingRepository
}

func NewListOrphanedBookingsQueryHandler(bookings ports.BookingRepository) ListOrphanedBookingsQueryHandler {
	return ListOrphanedBookingsQueryHandler{bookings: bookings}
}

func (h ListOrphanedBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListOrphanedBookingsQuery,
) ([]BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orphans, err := h.bookings.ListOrphaned(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, 0, len(orphans))
	for _, b := range orphans {
		responses = append(responses, toBookingResponse(b))
	}
	return responses, nil
}
