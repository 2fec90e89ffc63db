package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddDishCommandIsNotConstructed = errors.New(
		"AddDishCommand must be created via NewAddDishCommand constructor",
	)
)

// AddDishCommand registers a dish a seller offers. Field rules live in dish.NewDish.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	sellerID       kernel.UUID
	name           string
	price          int64
	restaurantName string
	imageURL       string
	isAvailable    bool

	guard guard.ConstructorGuard
}

func NewAddDishCommand(
	sellerID kernel.UUID,
	name string,
	price int64,
	restaurantName, imageURL string,
	isAvailable bool,
) (AddDishCommand, error) {
	if err := requiredID("sellerId", sellerID); err != nil {
		return AddDishCommand{}, err
	}

	return AddDishCommand{
		sellerID:       sellerID,
		name:           name,
		price:          price,
		restaurantName: restaurantName,
		imageURL:       imageURL,
		isAvailable:    isAvailable,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

func (c AddDishCommand) SellerID() kernel.UUID { return c.sellerID }
func (c AddDishCommand) Name() string { return c.name }
func (c AddDishCommand) Price() int64 { return c.price }
func (c AddDishCommand) RestaurantName() string { return c.restaurantName }
func (c AddDishCommand) ImageURL() string { return c.imageURL }
func (c AddDishCommand) IsAvailable() bool { return c.isAvailable }
