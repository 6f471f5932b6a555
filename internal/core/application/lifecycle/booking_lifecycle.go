package lifecycle

import (
	"context"
	"errors"
	"time"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// NewBooking is the input of BookingLifecycle.Create.
type NewBooking struct {
	ID            kernel.UUID
	LoadID        kernel.UUID
	TransporterID string
	ProposedRate  decimal.Decimal
	Comment       string
}

// BookingChanges is the input of BookingLifecycle.Update. A nil Status keeps
// the current one. The load reference cannot be changed.
type BookingChanges struct {
	TransporterID string
	ProposedRate  decimal.Decimal
	Comment       string
	Status        *booking.Status
}

// Outcome lists everything a booking operation changed besides the booking.
type Outcome struct {
	LoadID       kernel.UUID
	LoadStatus   []StatusChange
	AutoRejected []kernel.UUID
}

// BookingLifecycle runs the booking protocol inside one unit of work.
type BookingLifecycle struct {
	loads    LoadLifecycle
	bookings ports.BookingRepository
	policy   services.BookingPolicy
	now      func() time.Time
}

func NewBookingLifecycle(loads LoadLifecycle, bookings ports.BookingRepository, now func() time.Time) BookingLifecycle {
	if now == nil {
		now = time.Now
	}
	return BookingLifecycle{
		loads:    loads,
		bookings: bookings,
		policy:   services.NewBookingPolicy(),
		now:      now,
	}
}

// Get returns the booking or an ObjectNotFoundError.
func (l BookingLifecycle) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	return l.bookings.Get(ctx, id)
}

// Create places a Pending booking on a load and moves a Posted load to Booked.
func (l BookingLifecycle) Create(ctx context.Context, in NewBooking) (*booking.Booking, Outcome, error) {
	outcome := Outcome{LoadID: in.LoadID}

	target, err := l.loads.Lock(ctx, in.LoadID)
	if err != nil {
		return nil, outcome, err
	}

	exists, err := l.bookings.ExistsForLoadAndTransporter(ctx, in.LoadID, in.TransporterID)
	if err != nil {
		return nil, outcome, err
	}
	if err = l.policy.CheckCreate(target, exists); err != nil {
		return nil, outcome, err
	}

	created, err := booking.NewBooking(in.ID, in.LoadID, in.TransporterID, in.ProposedRate, in.Comment, l.now())
	if err != nil {
		return nil, outcome, err
	}
	if err = l.bookings.Add(ctx, created); err != nil {
		return nil, outcome, err
	}

	if next, changed := l.policy.LoadStatusAfterCreate(target.Status()); changed {
		if err = l.setLoadStatus(ctx, &outcome, next); err != nil {
			return nil, outcome, err
		}
	}

	return created, outcome, nil
}

// Update applies changes to a booking, then rejects pending siblings when it
// became Accepted, or reopens the load when every booking ended up Rejected.
func (l BookingLifecycle) Update(ctx context.Context, id kernel.UUID, in BookingChanges) (*booking.Booking, Outcome, error) {
	current, err := l.bookings.Get(ctx, id)
	if err != nil {
		return nil, Outcome{}, err
	}

	outcome := Outcome{LoadID: current.LoadID()}
	if err = l.lockLoad(ctx, &outcome); err != nil {
		return nil, outcome, err
	}

	previous := current.Status()
	if err = current.Revise(in.TransporterID, in.ProposedRate, in.Comment); err != nil {
		return nil, outcome, err
	}
	if in.Status != nil {
		if _, err = current.ChangeStatus(*in.Status); err != nil {
			return nil, outcome, err
		}
	}
	if err = l.bookings.Update(ctx, current); err != nil {
		return nil, outcome, err
	}

	siblings, err := l.bookings.ListByLoadID(ctx, current.LoadID())
	if err != nil {
		return nil, outcome, err
	}

	decision := l.policy.ReconcileAfterUpdate(current, previous, siblings)
	for _, rejected := range decision.Rejected {
		if err = l.bookings.Update(ctx, rejected); err != nil {
			return nil, outcome, err
		}
		outcome.AutoRejected = append(outcome.AutoRejected, rejected.ID())
	}
	if decision.ReopenLoad {
		if err = l.setLoadStatus(ctx, &outcome, load.Posted); err != nil {
			return nil, outcome, err
		}
	}

	return current, outcome, nil
}

// Delete removes a booking. The load is cancelled when no booking is left and
// reopened when only rejected ones remain.
func (l BookingLifecycle) Delete(ctx context.Context, id kernel.UUID) (Outcome, error) {
	current, err := l.bookings.Get(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{LoadID: current.LoadID()}
	if err = l.lockLoad(ctx, &outcome); err != nil {
		return outcome, err
	}

	if err = l.bookings.Delete(ctx, id); err != nil {
		return outcome, err
	}

	remaining, err := l.bookings.ListByLoadID(ctx, outcome.LoadID)
	if err != nil {
		return outcome, err
	}
	if next, changed := l.policy.LoadStatusAfterDelete(remaining); changed {
		if err = l.setLoadStatus(ctx, &outcome, next); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

// lockLoad takes the row lock on the booking's load. A missing load is not an
// error here: edits that need no load status change still go through, while
// a required status write fails with ObjectNotFoundError and aborts the unit
// of work.
func (l BookingLifecycle) lockLoad(ctx context.Context, outcome *Outcome) error {
	_, err := l.loads.Lock(ctx, outcome.LoadID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}

func (l BookingLifecycle) setLoadStatus(ctx context.Context, outcome *Outcome, status load.Status) error {
	change, err := l.loads.SetStatus(ctx, outcome.LoadID, status)
	if err != nil {
		return err
	}
	if change.Changed() {
		outcome.LoadStatus = append(outcome.LoadStatus, change)
	}
	return nil
}
