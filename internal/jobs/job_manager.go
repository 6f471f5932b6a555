package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orphanAuditJob *OrphanedBookingAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orphanAuditJob *OrphanedBookingAuditJob) *JobManager {
	return &JobManager{
		orphanAuditJob: orphanAuditJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orphanAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphaned booking audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orphanAuditJob.Stop()
}
