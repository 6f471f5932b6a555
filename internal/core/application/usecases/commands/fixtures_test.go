package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type uowFactory struct{ inner ports.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.inner.Create() }

type loadUoWFactory struct{ inner ports.UnitOfWorkFactory }

func (f loadUoWFactory) Create() commands.LoadUoW { return f.inner.Create() }

// env wires the handlers to the in-memory store.
type env struct {
	t        *testing.T
	factory  ports.UnitOfWorkFactory
	locker   *recordingLocker
	recorder *spyRecorder
	obs      commands.Observability
}

func newEnv(t *testing.T) *env {
	t.Helper()
	recorder := newSpyRecorder()
	return &env{
		t:        t,
		factory:  memory.NewUnitOfWorkFactory(memory.NewStore()),
		locker:   &recordingLocker{},
		recorder: recorder,
		obs: commands.Observability{
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			Recorder: recorder,
		},
	}
}

func (e *env) uow() commands.UoWFactory {
	return uowFactory{inner: e.factory}
}

func (e *env) loadUoW() commands.LoadUoWFactory {
	return loadUoWFactory{inner: e.factory}
}

func validDetails(t *testing.T) load.Details {
	t.Helper()

	pickup := time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)
	facility, err := load.NewFacility("Mumbai Port", "Delhi Warehouse", pickup, pickup.Add(58*time.Hour))
	require.NoError(t, err)

	return load.Details{
		ShipperID:   "SHIPPER001",
		Facility:    facility,
		ProductType: "Electronics",
		TruckType:   "Container",
		NoOfTrucks:  2,
		Weight:      decimal.RequireFromString("15.5"),
		Comment:     "Fragile",
	}
}

func (e *env) postLoad() kernel.UUID {
	e.t.Helper()

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(id, validDetails(e.t))
	require.NoError(e.t, err)
	require.NoError(e.t, commands.NewCreateLoadCommandHandler(e.loadUoW(), e.obs).Handle(e.t.Context(), cmd))
	return id
}

func (e *env) book(loadID kernel.UUID, transporter string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(id, loadID, transporter, decimal.NewFromInt(50000), "")
	require.NoError(e.t, err)
	return id, commands.NewCreateBookingCommandHandler(e.uow(), e.locker, e.obs).Handle(e.t.Context(), cmd)
}

func (e *env) mustBook(loadID kernel.UUID, transporter string) kernel.UUID {
	e.t.Helper()
	id, err := e.book(loadID, transporter)
	require.NoError(e.t, err)
	return id
}

func (e *env) setStatus(bookingID kernel.UUID, status booking.Status) error {
	current := e.booking(bookingID)
	cmd, err := commands.NewUpdateBookingCommand(
		bookingID, current.TransporterID(), current.ProposedRate(), current.Comment(), &status,
	)
	require.NoError(e.t, err)
	return commands.NewUpdateBookingCommandHandler(e.uow(), e.locker, e.obs).Handle(e.t.Context(), cmd)
}

func (e *env) deleteBooking(bookingID kernel.UUID) error {
	cmd, err := commands.NewDeleteBookingCommand(bookingID)
	require.NoError(e.t, err)
	return commands.NewDeleteBookingCommandHandler(e.uow(), e.locker, e.obs).Handle(e.t.Context(), cmd)
}

func (e *env) load(id kernel.UUID) *load.Load {
	e.t.Helper()
	l, err := e.factory.Create().LoadRepository().Get(e.t.Context(), id)
	require.NoError(e.t, err)
	return l
}

func (e *env) booking(id kernel.UUID) *booking.Booking {
	e.t.Helper()
	b, err := e.factory.Create().BookingRepository().Get(e.t.Context(), id)
	require.NoError(e.t, err)
	return b
}
