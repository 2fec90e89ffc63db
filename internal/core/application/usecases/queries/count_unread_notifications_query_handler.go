package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type CountUnreadNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewCountUnreadNotificationsQueryHandler(db *gorm.DB) CountUnreadNotificationsQueryHandler {
	return CountUnreadNotificationsQueryHandler{db: db}
}

func (h CountUnreadNotificationsQueryHandler) Handle(
	ctx context.Context,
	query CountUnreadNotificationsQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = ? AND is_read = false AND expires_at > ?
	`, query.UserID().Google(), time.Now()).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
