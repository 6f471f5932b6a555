package memory_test

import (
	"testing"
	"time"

	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_CRUD(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().BookingRepository()
	b := newTestBooking(t, kernel.NewUUID(), "T1", 1000, baseTime)

	require.NoError(t, repo.Add(ctx, b))
	_, err := b.ChangeStatus(booking.Accepted)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.Get(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.Accepted, got.Status())
	assert.True(t, got.LoadID().IsEqual(b.LoadID()))
	assert.True(t, got.ProposedRate().Equal(b.ProposedRate()))

	require.NoError(t, repo.Delete(ctx, b.ID()))
	_, err = repo.Get(ctx, b.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID()), errs.ErrObjectNotFound)
}

func TestBookingRepository_ListByLoadIDAndExists(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().BookingRepository()
	loadID, otherLoadID := kernel.NewUUID(), kernel.NewUUID()

	second := newTestBooking(t, loadID, "T2", 900, baseTime.Add(time.Minute))
	first := newTestBooking(t, loadID, "T1", 1000, baseTime)
	other := newTestBooking(t, otherLoadID, "T1", 1000, baseTime)
	for _, b := range []*booking.Booking{second, first, other} {
		require.NoError(t, repo.Add(ctx, b))
	}

	siblings, err := repo.ListByLoadID(ctx, loadID)
	require.NoError(t, err)
	require.Len(t, siblings, 2)
	assert.True(t, siblings[0].IsEqual(first))
	assert.True(t, siblings[1].IsEqual(second))

	exists, err := repo.ExistsForLoadAndTransporter(ctx, loadID, "T2")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForLoadAndTransporter(ctx, otherLoadID, "T2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBookingRepository_List(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().BookingRepository()
	loadID := kernel.NewUUID()

	cheap := newTestBooking(t, loadID, "T1", 500, baseTime)
	pricey := newTestBooking(t, loadID, "T2", 1500, baseTime.Add(time.Minute))
	elsewhere := newTestBooking(t, kernel.NewUUID(), "T1", 1000, baseTime.Add(2*time.Minute))
	_, err := pricey.ChangeStatus(booking.Rejected)
	require.NoError(t, err)
	for _, b := range []*booking.Booking{cheap, pricey, elsewhere} {
		require.NoError(t, repo.Add(ctx, b))
	}

	byRate := ports.PageRequest{Size: 10, SortBy: ports.BookingSortProposedRate, SortDir: ports.SortAsc}

	page, err := repo.List(ctx, ports.BookingFilter{}, byRate)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.True(t, page.Items[0].IsEqual(cheap))
	assert.True(t, page.Items[2].IsEqual(pricey))

	page, err = repo.List(ctx, ports.BookingFilter{LoadID: &loadID, TransporterID: "T1"}, byRate)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsEqual(cheap))

	page, err = repo.List(ctx, ports.BookingFilter{Status: booking.Rejected}, byRate)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsEqual(pricey))
}

func TestBookingRepository_ListOrphaned(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	l := newTestLoad(t, "S1", "Container", baseTime)
	require.NoError(t, uow.LoadRepository().Add(ctx, l))

	attached := newTestBooking(t, l.ID(), "T1", 100, baseTime)
	orphan := newTestBooking(t, kernel.NewUUID(), "T2", 100, baseTime)
	require.NoError(t, uow.BookingRepository().Add(ctx, attached))
	require.NoError(t, uow.BookingRepository().Add(ctx, orphan))

	orphans, err := uow.BookingRepository().ListOrphaned(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.True(t, orphans[0].IsEqual(orphan))

	require.NoError(t, uow.LoadRepository().Delete(ctx, l.ID()))
	orphans, err = uow.BookingRepository().ListOrphaned(ctx)
	require.NoError(t, err)
	assert.Len(t, orphans, 2)
}
