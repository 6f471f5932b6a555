package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gaugeSpy struct {
	mu       sync.Mutex
	observed []int
}

func (g *gaugeSpy) OrphanedBookingsObserved(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observed = append(g.observed, n)
}

func (g *gaugeSpy) Observed() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int(nil), g.observed...)
}

func seed(t *testing.T, uow ports.UnitOfWork, bookings int) kernel.UUID {
	t.Helper()
	ctx := t.Context()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	facility, err := load.NewFacility("Mumbai Port", "Delhi Warehouse", now.Add(24*time.Hour), now.Add(72*time.Hour))
	require.NoError(t, err)
	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
		ShipperID:   "SHIPPER001",
		Facility:    facility,
		ProductType: "Electronics",
		TruckType:   "Container",
		NoOfTrucks:  1,
		Weight:      decimal.NewFromInt(10),
	}, now)
	require.NoError(t, err)
	require.NoError(t, uow.LoadRepository().Add(ctx, l))

	for i := range bookings {
		b, err := booking.NewBooking(kernel.NewUUID(), l.ID(), "TRANS00"+string(rune('1'+i)), decimal.NewFromInt(100), "", now)
		require.NoError(t, err)
		require.NoError(t, uow.BookingRepository().Add(ctx, b))
	}
	return l.ID()
}

func newJob(t *testing.T, schedule string) (*jobs.OrphanedBookingAuditJob, ports.UnitOfWork, *gaugeSpy, *bytes.Buffer) {
	t.Helper()

	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	gauge := &gaugeSpy{}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	handler := queries.NewListOrphanedBookingsQueryHandler(uow.BookingRepository())
	return jobs.NewOrphanedBookingAuditJob(handler, gauge, schedule, logger), uow, gauge, &logs
}

func TestOrphanedBookingAuditJob_Run_ReportsOrphans(t *testing.T) {
	job, uow, gauge, logs := newJob(t, "")
	seed(t, uow, 1)
	deleted := seed(t, uow, 2)
	require.NoError(t, uow.LoadRepository().Delete(t.Context(), deleted))

	n, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{2}, gauge.Observed())
	assert.Contains(t, logs.String(), "Bookings reference deleted loads")
	assert.Contains(t, logs.String(), "count=2")
}

func TestOrphanedBookingAuditJob_Run_NothingToReport(t *testing.T) {
	job, uow, gauge, logs := newJob(t, "")
	seed(t, uow, 2)

	n, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []int{0}, gauge.Observed())
	assert.NotContains(t, logs.String(), "Bookings reference deleted loads")
}

func TestOrphanedBookingAuditJob_Start_RejectsMalformedSchedule(t *testing.T) {
	job, _, _, _ := newJob(t, "every ten minutes")

	manager := jobs.NewJobManager(job)

	assert.Error(t, manager.StartAll())
}

func TestOrphanedBookingAuditJob_RunsOnSchedule(t *testing.T) {
	job, uow, gauge, _ := newJob(t, "* * * * * *")
	require.NoError(t, uow.LoadRepository().Delete(context.Background(), seed(t, uow, 1)))

	manager := jobs.NewJobManager(job)
	require.NoError(t, manager.StartAll())

	assert.Eventually(t, func() bool {
		return len(gauge.Observed()) > 0
	}, 3*time.Second, 50*time.Millisecond)

	manager.StopAll()
	assert.Equal(t, 1, gauge.Observed()[0])
}
