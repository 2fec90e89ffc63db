package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

// NotificationRepository defines persistence for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification by id or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// UpdateReadState persists read and readAt, the only mutable fields.
	UpdateReadState(ctx context.Context, n *notification.Notification) error

	// MarkAllRead marks every unread notification of userID as read at the given
	// time and returns how many rows changed.
	MarkAllRead(ctx context.Context, userID kernel.UUID, at time.Time) (int64, error)

	// DeleteExpired removes notifications that expired before now and read
	// notifications whose readAt is before readBefore. Returns the deleted count.
	DeleteExpired(ctx context.Context, now, readBefore time.Time) (int64, error)
}
