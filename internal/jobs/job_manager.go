package jobs

import (
	"fmt"
	"log/slog"

	"veggo/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	resetTokenPurgeJob *ResetTokenPurgeJob
}

// NewJobManager creates a job manager wired with all background jobs.
func NewJobManager(
	purgeHandler commands.PurgeResetTokensCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		resetTokenPurgeJob: NewResetTokenPurgeJob(purgeHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.resetTokenPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start reset token purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.resetTokenPurgeJob.Stop()
}
