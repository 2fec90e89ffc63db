package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CreateAddressCommandHandler inserts an address, clearing the previous
// default first when the new one is the default.
//
// Example:
//
//	handler := NewCreateAddressCommandHandler(uowFactory)
//	cmd, _ := NewCreateAddressCommand(userID, "Home", "12 MG Road", "Bengaluru", "560001", true)
//	a, err := handler.Handle(ctx, cmd)
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{uowFactory: uowFactory}
}

func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	a, err := address.NewAddress(
		kernel.NewUUID(), cmd.UserID(),
		cmd.Label(), cmd.Line(), cmd.City(), cmd.PostalCode(),
		cmd.IsDefault(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()
	if a.IsDefault() {
		if err = repo.ClearDefaults(ctx, a.UserID()); err != nil {
			return nil, err
		}
	}

	if err = repo.Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
