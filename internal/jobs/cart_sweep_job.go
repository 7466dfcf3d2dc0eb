package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartSweepJob periodically clears carts that still point at suspended or
// banned restaurants, so stale carts cannot linger between a block and the
// customer's next visit.
type CartSweepJob struct {
	handler  commands.SweepUnavailableCartsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartSweepJob creates the sweep job with the given cron schedule.
func NewCartSweepJob(
	handler commands.SweepUnavailableCartsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CartSweepJob {
	return &CartSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "cart_sweep_job"),
	}
}

// Start begins the sweep job on its configured schedule.
func (j *CartSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepUnavailableCartsCommand()

		swept, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart sweep job failed", "error", handleErr)
			return
		}
		if swept > 0 {
			j.logger.InfoContext(ctx, "Cart sweep cleared stale carts", "carts", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *CartSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart sweep job stopped")
}
