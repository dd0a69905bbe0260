// Package jobs provides scheduled background tasks, implemented as cron
// schedules via github.com/robfig/cron/v3.
//
// ResetTokenPurgeJob runs hourly and clears password reset tokens whose
// expiry has passed, so stale tokens cannot linger in the accounts table.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//	    log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
