package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrSetDefaultAddressCommandIsNotConstructed = errors.New(
		"SetDefaultAddressCommand must be created via NewSetDefaultAddressCommand constructor",
	)
)

// SetDefaultAddressCommand makes addressID the only default address of userID.
type SetDefaultAddressCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetDefaultAddressCommand(userID, addressID kernel.UUID) (SetDefaultAddressCommand, error) {
	if err := errors.Join(
		requiredID("userId", userID),
		requiredID("addressId", addressID),
	); err != nil {
		return SetDefaultAddressCommand{}, err
	}

	return SetDefaultAddressCommand{
		userID:    userID,
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetDefaultAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultAddressCommandIsNotConstructed)
}

func (c SetDefaultAddressCommand) UserID() kernel.UUID { return c.userID }
func (c SetDefaultAddressCommand) AddressID() kernel.UUID { return c.addressID }

func requiredID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
