package ports

import (
	"context"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
)

// Sort fields accepted by BookingRepository.List.
const (
	BookingSortRequestedAt   = "requestedAt"
	BookingSortProposedRate  = "proposedRate"
	BookingSortTransporterID = "transporterId"
	BookingSortStatus        = "status"
)

// BookingSortFields lists every sort field BookingRepository.List understands.
var BookingSortFields = []string{BookingSortRequestedAt, BookingSortProposedRate, BookingSortTransporterID, BookingSortStatus}

// BookingFilter narrows BookingRepository.List. Nil or zero-valued fields do
// not filter; set fields are combined with AND.
type BookingFilter struct {
	LoadID        *kernel.UUID
	TransporterID string
	Status        booking.Status
}

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking. Returns
	// ObjectNotFoundError when the booking does not exist.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// Delete removes a booking. Returns ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListByLoadID returns every booking of a load, oldest request first.
	ListByLoadID(ctx context.Context, loadID kernel.UUID) ([]*booking.Booking, error)

	// ExistsForLoadAndTransporter reports whether the transporter already
	// holds a booking on the load, whatever its status.
	ExistsForLoadAndTransporter(ctx context.Context, loadID kernel.UUID, transporterID string) (bool, error)

	// List returns one page of bookings matching filter.
	List(ctx context.Context, filter BookingFilter, page PageRequest) (Page[*booking.Booking], error)

	// ListOrphaned returns bookings whose load no longer exists.
	ListOrphaned(ctx context.Context) ([]*booking.Booking, error)
}
