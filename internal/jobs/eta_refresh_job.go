package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EtaRefreshJob periodically re-quotes every order that is out for
// delivery from its last recorded driver position, so the customer-facing
// estimate stays fresh between pings.
type EtaRefreshJob struct {
	handler commands.RefreshEtasCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// etaRefreshSchedule runs the refresh every 30 seconds. Driver pings
// already refresh estimates on arrival; the job only covers quiet gaps.
const etaRefreshSchedule = "*/30 * * * * *"

// NewEtaRefreshJob creates the periodic estimate refresh job.
func NewEtaRefreshJob(handler commands.RefreshEtasCommandHandler, logger *slog.Logger) *EtaRefreshJob {
	return &EtaRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "eta_refresh_job"),
	}
}

// Start begins the refresh job on its fixed schedule.
func (j *EtaRefreshJob) Start() error {
	_, err := j.cron.AddFunc(etaRefreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshEtasCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Estimate refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Estimate refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the refresh job.
func (j *EtaRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Estimate refresh job stopped")
}
