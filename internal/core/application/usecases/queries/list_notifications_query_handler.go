package queries

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationView is a notification as the client sees it.
type NotificationView struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Type        notification.Type
	Title       string
	Message     string
	Metadata    map[string]any
	Priority    notification.Priority
	ActionRoute string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle skips notifications that already expired but were not cleaned up yet.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			user_id,
			type,
			title,
			message,
			metadata,
			priority,
			action_route,
			is_read,
			read_at,
			created_at,
			expires_at
		FROM notifications
		WHERE user_id = ? AND expires_at > ?`
	args := []any{query.UserID().Google(), time.Now()}
	if query.UnreadOnly() {
		stmt += ` AND is_read = false`
	}
	stmt += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var view NotificationView
		var id, userID uuid.UUID
		var typ, priority string
		var actionRoute *string
		var metadata []byte

		err = rows.Scan(
			&id,
			&userID,
			&typ,
			&view.Title,
			&view.Message,
			&metadata,
			&priority,
			&actionRoute,
			&view.IsRead,
			&view.ReadAt,
			&view.CreatedAt,
			&view.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromGoogle(userID); err != nil {
			return nil, err
		}
		view.Type = notification.Type(typ)
		view.Priority = notification.Priority(priority)
		if actionRoute != nil {
			view.ActionRoute = *actionRoute
		}
		if len(metadata) > 0 {
			if err = json.Unmarshal(metadata, &view.Metadata); err != nil {
				return nil, err
			}
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
