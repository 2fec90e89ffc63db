package commands

import (
	"context"
	"time"
)

// CleanupNotificationsCommandHandler runs the notification retention sweep.
// Usually driven by a cron job.
type CleanupNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	now        func() time.Time
}

func NewCleanupNotificationsCommandHandler(uowFactory NotificationUoWFactory) CleanupNotificationsCommandHandler {
	return CleanupNotificationsCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the number of deleted notifications.
func (h *CleanupNotificationsCommandHandler) Handle(ctx context.Context, cmd CleanupNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	deleted, err := uow.NotificationRepository().DeleteExpired(ctx, now, now.Add(-cmd.ReadRetention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
