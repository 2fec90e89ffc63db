package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListAddressesQueryIsNotConstructed = errors.New(
		"ListAddressesQuery must be created via NewListAddressesQuery constructor",
	)
)

// ListAddressesQuery lists a user's saved addresses, default first.
type ListAddressesQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewListAddressesQuery(userID kernel.UUID) (ListAddressesQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListAddressesQuery{}, err
	}
	return ListAddressesQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

func (q ListAddressesQuery) UserID() kernel.UUID { return q.userID }
