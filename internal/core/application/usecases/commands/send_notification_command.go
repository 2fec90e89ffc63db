package commands

import (
	"encoding/json"
	"errors"
	"maps"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrSendNotificationCommandIsNotConstructed = errors.New(
		"SendNotificationCommand must be created via NewSendNotificationCommand constructor",
	)
)

// SendNotificationCommand is a standalone trigger: promotional, recommendation,
// new-restaurant or system notice. Empty priority and action route take the
// dispatcher defaults.
type SendNotificationCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	typ         notification.Type
	title       string
	message     string
	metadata    map[string]any
	priority    notification.Priority
	actionRoute string

	guard guard.ConstructorGuard
}

func NewSendNotificationCommand(
	userID kernel.UUID,
	typ notification.Type,
	title, message string,
	metadata map[string]any,
	priority notification.Priority,
	actionRoute string,
) (SendNotificationCommand, error) {
	problems := []error{requiredID("userId", userID), typ.Validate()}
	if priority != "" {
		problems = append(problems, priority.Validate())
	}
	problems = append(problems, validateContentSize(title, message, metadata))
	if err := errors.Join(problems...); err != nil {
		return SendNotificationCommand{}, err
	}

	return SendNotificationCommand{
		userID:      userID,
		typ:         typ,
		title:       title,
		message:     message,
		metadata:    maps.Clone(metadata),
		priority:    priority,
		actionRoute: actionRoute,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationCommandIsNotConstructed)
}

func (c SendNotificationCommand) UserID() kernel.UUID { return c.userID }
func (c SendNotificationCommand) Type() notification.Type { return c.typ }
func (c SendNotificationCommand) Title() string { return c.title }
func (c SendNotificationCommand) Message() string { return c.message }
func (c SendNotificationCommand) Metadata() map[string]any { return maps.Clone(c.metadata) }
func (c SendNotificationCommand) Priority() notification.Priority { return c.priority }
func (c SendNotificationCommand) ActionRoute() string { return c.actionRoute }

func validateContentSize(title, message string, metadata map[string]any) error {
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("metadata", err)
	}
	size := len(title) + len(message) + len(encoded)
	if size > notification.MaxContentBytes {
		return errs.NewValueIsOutOfRangeError("notification content size", size, 0, notification.MaxContentBytes)
	}
	return nil
}
