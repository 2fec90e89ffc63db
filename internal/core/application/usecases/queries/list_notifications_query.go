package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	DefaultNotificationsLimit = 50
	MaxNotificationsLimit     = 100
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
)

// ListNotificationsQuery lists a user's notifications, newest first.
// A zero limit means DefaultNotificationsLimit.
type ListNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool
	limit      int
	guard      guard.ConstructorGuard
}

func NewListNotificationsQuery(userID kernel.UUID, unreadOnly bool, limit int) (ListNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	if limit == 0 {
		limit = DefaultNotificationsLimit
	}
	if limit < 1 || limit > MaxNotificationsLimit {
		return ListNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationsLimit)
	}
	return ListNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) UserID() kernel.UUID { return q.userID }
func (q ListNotificationsQuery) UnreadOnly() bool { return q.unreadOnly }
func (q ListNotificationsQuery) Limit() int { return q.limit }
