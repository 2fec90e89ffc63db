// Package jobs provides scheduled background tasks for the food delivery service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and take their schedule from
// configuration, so both standard five-field expressions and descriptors such
// as "@every 1m" are accepted.
//
// # Available Jobs
//
// 1. AvailabilityReaperJob - marks sellers offline when their connection has been
// silent for longer than the inactivity timeout
// 2. NotificationCleanupJob - deletes expired notifications and read notifications
// past their retention
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reaperJob, cleanupJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick runs normally. Failed job starts stop
// any already running jobs.
package jobs
