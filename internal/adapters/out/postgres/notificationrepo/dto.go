// Package notificationrepo persists user notifications.
package notificationrepo

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;index:idx_notifications_user_created,priority:1;not null"`
	Type        string         `gorm:"type:varchar(32);not null"`
	Title       string         `gorm:"not null"`
	Message     string         `gorm:"not null"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	Priority    string         `gorm:"type:varchar(16);not null"`
	ActionRoute string
	IsRead      bool `gorm:"index;not null;default:false"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"index:idx_notifications_user_created,priority:2"`
	ExpiresAt   time.Time `gorm:"index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) (NotificationDTO, error) {
	var metadata datatypes.JSON
	if md := n.Metadata(); len(md) > 0 {
		raw, err := json.Marshal(md)
		if err != nil {
			return NotificationDTO{}, err
		}
		metadata = raw
	}

	return NotificationDTO{
		ID:          n.ID().Google(),
		UserID:      n.UserID().Google(),
		Type:        string(n.Type()),
		Title:       n.Title(),
		Message:     n.Message(),
		Metadata:    metadata,
		Priority:    string(n.Priority()),
		ActionRoute: n.ActionRoute(),
		IsRead:      n.IsRead(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt(),
		ExpiresAt:   n.ExpiresAt(),
	}, nil
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}

	var metadata map[string]any
	if len(dto.Metadata) > 0 {
		if err := json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return nil, err
		}
	}

	return notification.RestoreNotification(notification.Snapshot{
		ID:          id,
		UserID:      userID,
		Type:        notification.Type(dto.Type),
		Title:       dto.Title,
		Message:     dto.Message,
		Metadata:    metadata,
		Priority:    notification.Priority(dto.Priority),
		ActionRoute: dto.ActionRoute,
		Read:        dto.IsRead,
		ReadAt:      dto.ReadAt,
		CreatedAt:   dto.CreatedAt,
		ExpiresAt:   dto.ExpiresAt,
	})
}
