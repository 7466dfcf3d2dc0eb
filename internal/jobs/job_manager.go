// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3 and coordinated through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cartSweepJob *CartSweepJob
}

// NewJobManager creates a job manager wired with the handlers the jobs
// execute.
func NewJobManager(
	sweepHandler commands.SweepUnavailableCartsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartSweepJob: NewCartSweepJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.cartSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartSweepJob.Stop()
}
