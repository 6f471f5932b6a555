package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// BookingRepository implements ports.BookingRepository on a Store.
type BookingRepository struct {
	access stateAccess
}

func (r *BookingRepository) Add(_ context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	rec := bookingToRecord(aggregate)
	return r.access.write(func(s *state) error {
		if _, ok := s.bookings[rec.ID]; ok {
			return errs.NewValueIsInvalidError("booking " + rec.ID.String() + " already exists")
		}
		s.bookings[rec.ID] = rec
		return nil
	})
}

func (r *BookingRepository) Update(_ context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	rec := bookingToRecord(aggregate)
	return r.access.write(func(s *state) error {
		if _, ok := s.bookings[rec.ID]; !ok {
			return errs.NewObjectNotFoundError("booking", rec.ID.String())
		}
		s.bookings[rec.ID] = rec
		return nil
	})
}

func (r *BookingRepository) Get(_ context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var rec bookingRecord
	err := r.access.read(func(s *state) error {
		var ok bool
		if rec, ok = s.bookings[id.Raw()]; !ok {
			return errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recordToBooking(rec)
}

func (r *BookingRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.access.write(func(s *state) error {
		if _, ok := s.bookings[id.Raw()]; !ok {
			return errs.NewObjectNotFoundError("booking", id.String())
		}
		delete(s.bookings, id.Raw())
		return nil
	})
}

func (r *BookingRepository) ListByLoadID(_ context.Context, loadID kernel.UUID) ([]*booking.Booking, error) {
	return r.collect(func(_ *state, rec bookingRecord) bool {
		return rec.LoadID == loadID.Raw()
	})
}

func (r *BookingRepository) ExistsForLoadAndTransporter(
	_ context.Context,
	loadID kernel.UUID,
	transporterID string,
) (bool, error) {
	found := false
	_ = r.access.read(func(s *state) error {
		for _, rec := range s.bookings {
			if rec.LoadID == loadID.Raw() && rec.TransporterID == transporterID {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, nil
}

func (r *BookingRepository) List(
	_ context.Context,
	filter ports.BookingFilter,
	page ports.PageRequest,
) (ports.Page[*booking.Booking], error) {
	if err := page.Validate(ports.BookingSortFields); err != nil {
		return ports.Page[*booking.Booking]{}, err
	}

	var matched []bookingRecord
	_ = r.access.read(func(s *state) error {
		for _, rec := range s.bookings {
			if matchesBooking(rec, filter) {
				matched = append(matched, rec)
			}
		}
		return nil
	})

	slices.SortFunc(matched, func(a, b bookingRecord) int {
		c := compareBookings(a, b, page.SortBy)
		if page.SortDir == ports.SortDesc {
			c = -c
		}
		return cmp.Or(c, strings.Compare(a.ID.String(), b.ID.String()))
	})

	items := make([]*booking.Booking, 0, page.Size)
	for _, rec := range window(matched, page) {
		b, err := recordToBooking(rec)
		if err != nil {
			return ports.Page[*booking.Booking]{}, err
		}
		items = append(items, b)
	}

	return ports.NewPage(items, page, int64(len(matched))), nil
}

func (r *BookingRepository) ListOrphaned(_ context.Context) ([]*booking.Booking, error) {
	return r.collect(func(s *state, rec bookingRecord) bool {
		_, ok := s.loads[rec.LoadID]
		return !ok
	})
}

// collect returns matching bookings, oldest request first.
func (r *BookingRepository) collect(match func(s *state, rec bookingRecord) bool) ([]*booking.Booking, error) {
	var matched []bookingRecord
	_ = r.access.read(func(s *state) error {
		for _, rec := range s.bookings {
			if match(s, rec) {
				matched = append(matched, rec)
			}
		}
		return nil
	})

	slices.SortFunc(matched, func(a, b bookingRecord) int {
		return cmp.Or(a.RequestedAt.Compare(b.RequestedAt), strings.Compare(a.ID.String(), b.ID.String()))
	})

	result := make([]*booking.Booking, 0, len(matched))
	for _, rec := range matched {
		b, err := recordToBooking(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

func matchesBooking(rec bookingRecord, f ports.BookingFilter) bool {
	if f.LoadID != nil && rec.LoadID != f.LoadID.Raw() {
		return false
	}
	if f.TransporterID != "" && rec.TransporterID != f.TransporterID {
		return false
	}
	if f.Status != booking.Unknown && rec.Status != int(f.Status) {
		return false
	}
	return true
}

func compareBookings(a, b bookingRecord, field string) int {
	switch field {
	case ports.BookingSortProposedRate:
		return a.ProposedRate.Cmp(b.ProposedRate)
	case ports.BookingSortTransporterID:
		return strings.Compare(a.TransporterID, b.TransporterID)
	case ports.BookingSortStatus:
		return cmp.Compare(a.Status, b.Status)
	default:
		return a.RequestedAt.Compare(b.RequestedAt)
	}
}

func bookingToRecord(b *booking.Booking) bookingRecord {
	return bookingRecord{
		ID:            b.ID().Raw(),
		LoadID:        b.LoadID().Raw(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        int(b.Status()),
		RequestedAt:   b.RequestedAt(),
	}
}

func recordToBooking(rec bookingRecord) (*booking.Booking, error) {
	id, err := kernel.UUIDFromRaw(rec.ID)
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFromRaw(rec.LoadID)
	if err != nil {
		return nil, err
	}
	return booking.RestoreBooking(id, loadID, rec.TransporterID, rec.ProposedRate, rec.Comment,
		booking.Status(rec.Status), rec.RequestedAt)
}
