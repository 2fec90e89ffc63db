package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AddDishCommandHandler persists a new dish.
type AddDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewAddDishCommandHandler(uowFactory DishUoWFactory) AddDishCommandHandler {
	return AddDishCommandHandler{uowFactory: uowFactory}
}

func (h *AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := dish.NewDish(
		kernel.NewUUID(), cmd.SellerID(), cmd.Name(), cmd.Price(),
		cmd.RestaurantName(), cmd.ImageURL(), cmd.IsAvailable(),
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

	if err = uow.DishRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
