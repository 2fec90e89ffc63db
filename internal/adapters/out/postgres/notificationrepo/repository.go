package notificationrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(n)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("metadata", err)
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert notification", err)
	}
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, errs.NewPersistenceError("select notification", err)
	}
	return toDomain(dto)
}

func (r *GormNotificationRepository) UpdateReadState(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Google()).
		Updates(map[string]any{
			"is_read": n.IsRead(),
			"read_at": n.ReadAt(),
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	return nil
}

func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, at time.Time) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = ?", userID.Google(), false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": at,
		})
	if result.Error != nil {
		return 0, errs.NewPersistenceError("mark notifications read", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormNotificationRepository) DeleteExpired(ctx context.Context, now, readBefore time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR (is_read = ? AND read_at < ?)", now, true, readBefore).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, errs.NewPersistenceError("delete expired notifications", result.Error)
	}
	return result.RowsAffected, nil
}
