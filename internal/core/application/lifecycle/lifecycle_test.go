package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/core/application/lifecycle"
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var clock = func() time.Time { return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC) }

// harness runs each lifecycle call in its own committed unit of work, the way
// command handlers do.
type harness struct {
	t       *testing.T
	factory ports.UnitOfWorkFactory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, factory: memory.NewUnitOfWorkFactory(memory.NewStore())}
}

func (h *harness) inTx(fn func(loads lifecycle.LoadLifecycle, bookings lifecycle.BookingLifecycle) error) error {
	ctx := h.t.Context()
	uow := h.factory.Create()
	require.NoError(h.t, uow.Begin(ctx))

	loads := lifecycle.NewLoadLifecycle(uow.LoadRepository(), clock)
	bookings := lifecycle.NewBookingLifecycle(loads, uow.BookingRepository(), clock)
	if err := fn(loads, bookings); err != nil {
		require.NoError(h.t, uow.Rollback(ctx))
		return err
	}
	return uow.Commit(ctx)
}

func (h *harness) createLoad() kernel.UUID {
	h.t.Helper()

	pickup := time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)
	facility, err := load.NewFacility("Mumbai Port", "Delhi Warehouse", pickup, pickup.Add(58*time.Hour))
	require.NoError(h.t, err)

	id := kernel.NewUUID()
	err = h.inTx(func(loads lifecycle.LoadLifecycle, _ lifecycle.BookingLifecycle) error {
		_, err := loads.Create(h.t.Context(), id, load.Details{
			ShipperID:   "SHIPPER001",
			Facility:    facility,
			ProductType: "Electronics",
			TruckType:   "Container",
			NoOfTrucks:  2,
			Weight:      decimal.RequireFromString("15.5"),
		})
		return err
	})
	require.NoError(h.t, err)
	return id
}

func (h *harness) createBooking(loadID kernel.UUID, transporter string, rate int64) (kernel.UUID, lifecycle.Outcome, error) {
	id := kernel.NewUUID()
	var outcome lifecycle.Outcome
	err := h.inTx(func(_ lifecycle.LoadLifecycle, bookings lifecycle.BookingLifecycle) error {
		var err error
		_, outcome, err = bookings.Create(h.t.Context(), lifecycle.NewBooking{
			ID:            id,
			LoadID:        loadID,
			TransporterID: transporter,
			ProposedRate:  decimal.NewFromInt(rate),
		})
		return err
	})
	return id, outcome, err
}

func (h *harness) mustCreateBooking(loadID kernel.UUID, transporter string, rate int64) kernel.UUID {
	h.t.Helper()
	id, _, err := h.createBooking(loadID, transporter, rate)
	require.NoError(h.t, err)
	return id
}

func (h *harness) setBookingStatus(id kernel.UUID, status booking.Status) (lifecycle.Outcome, error) {
	var outcome lifecycle.Outcome
	err := h.inTx(func(_ lifecycle.LoadLifecycle, bookings lifecycle.BookingLifecycle) error {
		current, err := bookings.Get(h.t.Context(), id)
		if err != nil {
			return err
		}
		_, outcome, err = bookings.Update(h.t.Context(), id, lifecycle.BookingChanges{
			TransporterID: current.TransporterID(),
			ProposedRate:  current.ProposedRate(),
			Comment:       current.Comment(),
			Status:        &status,
		})
		return err
	})
	return outcome, err
}

func (h *harness) deleteBooking(id kernel.UUID) (lifecycle.Outcome, error) {
	var outcome lifecycle.Outcome
	err := h.inTx(func(_ lifecycle.LoadLifecycle, bookings lifecycle.BookingLifecycle) error {
		var err error
		outcome, err = bookings.Delete(h.t.Context(), id)
		return err
	})
	return outcome, err
}

func (h *harness) loadStatus(id kernel.UUID) load.Status {
	h.t.Helper()
	l, err := h.factory.Create().LoadRepository().Get(context.Background(), id)
	require.NoError(h.t, err)
	return l.Status()
}

func (h *harness) bookingStatus(id kernel.UUID) booking.Status {
	h.t.Helper()
	b, err := h.factory.Create().BookingRepository().Get(context.Background(), id)
	require.NoError(h.t, err)
	return b.Status()
}
