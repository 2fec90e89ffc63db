package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCountUnreadNotificationsQueryIsNotConstructed = errors.New(
		"CountUnreadNotificationsQuery must be created via NewCountUnreadNotificationsQuery constructor",
	)
)

type CountUnreadNotificationsQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewCountUnreadNotificationsQuery(userID kernel.UUID) (CountUnreadNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return CountUnreadNotificationsQuery{}, err
	}
	return CountUnreadNotificationsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q CountUnreadNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrCountUnreadNotificationsQueryIsNotConstructed)
}

func (q CountUnreadNotificationsQuery) UserID() kernel.UUID { return q.userID }
