package queries

import (
	"context"
	"errors"
	"strings"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// ListBookingsQuery pages through bookings filtered by load, transporter and
// status. Results default to the most recent request first.
type ListBookingsQuery struct {
	filter ports.BookingFilter
	page   ports.PageRequest
	guard  guard.ConstructorGuard
}

func NewListBookingsQuery(filter ports.BookingFilter, page ports.PageRequest) (ListBookingsQuery, error) {
	filter.TransporterID = strings.TrimSpace(filter.TransporterID)
	if filter.LoadID != nil {
		if err := filter.LoadID.Validate(); err != nil {
			return ListBookingsQuery{}, err
		}
		loadID := *filter.LoadID
		filter.LoadID = &loadID
	}
	if filter.Status != booking.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListBookingsQuery{}, err
		}
	}

	page, err := withPageDefaults(page, ports.BookingSortRequestedAt, ports.BookingSortFields)
	if err != nil {
		return ListBookingsQuery{}, err
	}

	return ListBookingsQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

func (q ListBookingsQuery) Filter() ports.BookingFilter {
	return q.filter
}

func (q ListBookingsQuery) Page() ports.PageRequest {
	return q.page
}

type ListBookingsQueryHandler struct {
	bookings ports.BookingRepository
}

func NewListBookingsQueryHandler(bookings ports.BookingRepository) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{bookings: bookings}
}

func (h ListBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListBookingsQuery,
) (ports.Page[BookingResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[BookingResponse]{}, err
	}

	page, err := h.bookings.List(ctx, query.Filter(), query.Page())
	if err != nil {
		return ports.Page[BookingResponse]{}, err
	}
	return ports.MapPage(page, toBookingResponse), nil
}
