package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateAddressCommandIsNotConstructed = errors.New(
		"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
	)
)

// CreateAddressCommand saves a new delivery address for a user. With isDefault
// set, every other address of the user loses its default flag in the same
// transaction.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	label      string
	line       string
	city       string
	postalCode string
	isDefault  bool

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand checks the user id; field-level rules live in address.NewAddress.
func NewCreateAddressCommand(
	userID kernel.UUID,
	label, line, city, postalCode string,
	isDefault bool,
) (CreateAddressCommand, error) {
	if err := userID.Validate(); err != nil {
		return CreateAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return CreateAddressCommand{
		userID:     userID,
		label:      label,
		line:       line,
		city:       city,
		postalCode: postalCode,
		isDefault:  isDefault,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) UserID() kernel.UUID { return c.userID }
func (c CreateAddressCommand) Label() string { return c.label }
func (c CreateAddressCommand) Line() string { return c.line }
func (c CreateAddressCommand) City() string { return c.city }
func (c CreateAddressCommand) PostalCode() string { return c.postalCode }
func (c CreateAddressCommand) IsDefault() bool { return c.isDefault }
