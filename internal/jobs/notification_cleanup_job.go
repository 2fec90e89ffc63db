package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type CleanupNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.CleanupNotificationsCommand) (int64, error)
}

// NotificationCleanupJob deletes expired notifications and read notifications
// older than the read retention.
type NotificationCleanupJob struct {
	handler       CleanupNotificationsHandler
	schedule      string
	readRetention time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

func NewNotificationCleanupJob(
	handler CleanupNotificationsHandler,
	schedule string,
	readRetention time.Duration,
	logger *slog.Logger,
) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler:       handler,
		schedule:      schedule,
		readRetention: readRetention,
		cron:          cron.New(),
		logger:        logger.With("component", "notification_cleanup_job"),
	}
}

func (j *NotificationCleanupJob) Start() error {
	if _, err := commands.NewCleanupNotificationsCommand(j.readRetention); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Notification cleanup job started", "schedule", j.schedule, "readRetention", j.readRetention)
	return nil
}

// Run performs a single cleanup.
func (j *NotificationCleanupJob) Run(ctx context.Context) {
	cmd, err := commands.NewCleanupNotificationsCommand(j.readRetention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", err)
		return
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Deleted stale notifications", "count", deleted)
	}
}

func (j *NotificationCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Notification cleanup job stopped")
}
