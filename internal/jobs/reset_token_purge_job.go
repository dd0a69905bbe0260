package jobs

import (
	"context"
	"log/slog"

	"veggo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ResetTokenPurgeJob clears expired password reset tokens on a schedule.
// Runs at the top of every hour.
type ResetTokenPurgeJob struct {
	handler commands.PurgeResetTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewResetTokenPurgeJob creates the hourly reset token housekeeping job.
func NewResetTokenPurgeJob(handler commands.PurgeResetTokensCommandHandler, logger *slog.Logger) *ResetTokenPurgeJob {
	return &ResetTokenPurgeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reset_token_purge_job"),
	}
}

// Start begins the hourly purge schedule.
func (j *ResetTokenPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeResetTokensCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reset token purge job failed to build command", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Reset token purge job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Expired reset tokens cleared", "accounts", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reset token purge job started (running hourly)")
	return nil
}

// Stop stops the purge job.
func (j *ResetTokenPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reset token purge job stopped")
}
