// Package jobs provides scheduled background tasks for the load board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules carry a leading seconds field.
//
// # Available Jobs
//
// OrphanedBookingAuditJob - deleting a load leaves its bookings in place.
// The audit counts such bookings, publishes the count as a gauge and logs a
// warning with a sample of their ids. It never modifies data and takes no
// part in the booking protocol.
//
// # Usage
//
//	audit := jobs.NewOrphanedBookingAuditJob(handler, metrics, "0 */10 * * * *", logger)
//	jobManager := jobs.NewJobManager(audit)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed audit run is logged and retried on the next tick. A malformed
// schedule makes StartAll fail.
package jobs
