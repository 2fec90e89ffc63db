package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reaperJob  *AvailabilityReaperJob
	cleanupJob *NotificationCleanupJob
}

func NewJobManager(reaperJob *AvailabilityReaperJob, cleanupJob *NotificationCleanupJob) *JobManager {
	return &JobManager{
		reaperJob:  reaperJob,
		cleanupJob: cleanupJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start availability reaper job: %w", err)
	}

	if err := jm.cleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reaperJob.Stop()
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.cleanupJob.Stop()
	jm.reaperJob.Stop()
}
