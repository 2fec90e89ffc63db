package commands

import (
	"context"

	"fooddelivery/internal/pkg/errs"
)

// SetDefaultAddressCommandHandler clears every default of the user and sets
// the requested one inside one transaction, so no reader ever sees two defaults.
type SetDefaultAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewSetDefaultAddressCommandHandler(uowFactory AddressUoWFactory) SetDefaultAddressCommandHandler {
	return SetDefaultAddressCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError when the address does not exist or
// belongs to another user.
func (h *SetDefaultAddressCommandHandler) Handle(ctx context.Context, cmd SetDefaultAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()
	a, err := repo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !a.OwnedBy(cmd.UserID()) {
		return errs.NewObjectNotFoundError("addressId", cmd.AddressID().String())
	}

	if err = repo.ClearDefaults(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err = repo.SetDefault(ctx, cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
