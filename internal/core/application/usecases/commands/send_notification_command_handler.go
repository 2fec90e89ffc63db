package commands

import (
	"context"

	"fooddelivery/internal/core/application/notifications"
	"fooddelivery/internal/core/domain/model/notification"
)

// SendNotificationCommandHandler hands a standalone trigger to the dispatcher.
type SendNotificationCommandHandler struct {
	sender NotificationSender
}

func NewSendNotificationCommandHandler(sender NotificationSender) SendNotificationCommandHandler {
	return SendNotificationCommandHandler{sender: sender}
}

func (h *SendNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd SendNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.sender.Dispatch(ctx, notifications.Message{
		UserID:      cmd.UserID(),
		Type:        cmd.Type(),
		Title:       cmd.Title(),
		Message:     cmd.Message(),
		Metadata:    cmd.Metadata(),
		Priority:    cmd.Priority(),
		ActionRoute: cmd.ActionRoute(),
	})
}
