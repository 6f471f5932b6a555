package jobs

import (
	"context"
	"log/slog"
	"time"

	"loadboard/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOrphanAuditSchedule runs the audit every ten minutes. The
// expression has a leading seconds field.
const DefaultOrphanAuditSchedule = "0 */10 * * * *"

// sampleSize caps how many orphan ids end up in one log line.
const sampleSize = 10

// OrphanGauge receives the orphan count of every audit run.
type OrphanGauge interface {
	OrphanedBookingsObserved(n int)
}

// OrphanedBookingAuditJob periodically counts bookings whose load was
// deleted. It only reads; nothing is cleaned up.
type OrphanedBookingAuditJob struct {
	handler  queries.ListOrphanedBookingsQueryHandler
	gauge    OrphanGauge
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrphanedBookingAuditJob(
	handler queries.ListOrphanedBookingsQueryHandler,
	gauge OrphanGauge,
	schedule string,
	logger *slog.Logger,
) *OrphanedBookingAuditJob {
	if schedule == "" {
		schedule = DefaultOrphanAuditSchedule
	}
	return &OrphanedBookingAuditJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "orphaned_booking_audit_job"),
	}
}

// Start schedules the audit. It fails on a malformed schedule.
func (j *OrphanedBookingAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Orphaned booking audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphaned booking audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit and returns the number of orphans found.
func (j *OrphanedBookingAuditJob) Run(ctx context.Context) (int, error) {
	orphans, err := j.handler.Handle(ctx, queries.NewListOrphanedBookingsQuery())
	if err != nil {
		return 0, err
	}

	if j.gauge != nil {
		j.gauge.OrphanedBookingsObserved(len(orphans))
	}

	if len(orphans) == 0 {
		return 0, nil
	}

	sample := make([]string, 0, sampleSize)
	for _, o := range orphans[:min(len(orphans), sampleSize)] {
		sample = append(sample, o.ID.String())
	}
	j.logger.WarnContext(ctx, "Bookings reference deleted loads",
		"count", len(orphans),
		"sample", sample,
	)
	return len(orphans), nil
}

// Stop stops scheduling and waits for a running audit to finish.
func (j *OrphanedBookingAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Orphaned booking audit job stopped")
}
