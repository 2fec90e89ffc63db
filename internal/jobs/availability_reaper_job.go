package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// InactiveSellerReaper is implemented by the availability registry.
type InactiveSellerReaper interface {
	ReapInactive(ctx context.Context, timeout time.Duration) int
}

// AvailabilityReaperJob periodically takes silent sellers offline.
type AvailabilityReaperJob struct {
	reaper   InactiveSellerReaper
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAvailabilityReaperJob(
	reaper InactiveSellerReaper,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *AvailabilityReaperJob {
	return &AvailabilityReaperJob{
		reaper:   reaper,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(),
		logger:   logger.With("component", "availability_reaper_job"),
	}
}

func (j *AvailabilityReaperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Availability reaper job started", "schedule", j.schedule, "timeout", j.timeout)
	return nil
}

// Run performs a single sweep.
func (j *AvailabilityReaperJob) Run(ctx context.Context) {
	if reaped := j.reaper.ReapInactive(ctx, j.timeout); reaped > 0 {
		j.logger.InfoContext(ctx, "Marked inactive sellers offline", "count", reaped)
	}
}

func (j *AvailabilityReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Availability reaper job stopped")
}
