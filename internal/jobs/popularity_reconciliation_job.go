package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"bitebox/internal/core/application/usecases/commands"
)

// PopularityReconciliationJob periodically recomputes restaurant popularity
// counters from the dispatched-order counts. The counters are maintained
// incrementally on the hot path; this job repairs drift left by partial
// failures.
type PopularityReconciliationJob struct {
	handler commands.ReconcilePopularityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPopularityReconciliationJob creates a job that reconciles popularity
// counters once a minute.
func NewPopularityReconciliationJob(
	handler commands.ReconcilePopularityCommandHandler,
	logger *slog.Logger,
) *PopularityReconciliationJob {
	return &PopularityReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "popularity_reconciliation_job"),
	}
}

// Start begins the reconciliation job, running at the top of every minute.
func (j *PopularityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcilePopularityCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Popularity reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Popularity reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *PopularityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Popularity reconciliation job stopped")
}
