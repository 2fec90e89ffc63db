package commands

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCleanupNotificationsCommandIsNotConstructed = errors.New(
		"CleanupNotificationsCommand must be created via NewCleanupNotificationsCommand constructor",
	)
)

// CleanupNotificationsCommand removes expired notifications and read
// notifications older than readRetention.
//
// Example:
//
//	cmd, _ := NewCleanupNotificationsCommand(7 * 24 * time.Hour)
//	deleted, err := handler.Handle(ctx, cmd)
type CleanupNotificationsCommand struct { //nolint:recvcheck //using for validation
	readRetention time.Duration

	guard guard.ConstructorGuard
}

func NewCleanupNotificationsCommand(readRetention time.Duration) (CleanupNotificationsCommand, error) {
	if readRetention <= 0 {
		return CleanupNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"readRetention", fmt.Errorf("%s is not positive", readRetention))
	}
	return CleanupNotificationsCommand{readRetention: readRetention, guard: guard.NewConstructorGuard()}, nil
}

func (c CleanupNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupNotificationsCommandIsNotConstructed)
}

func (c CleanupNotificationsCommand) ReadRetention() time.Duration {
	return c.readRetention
}
