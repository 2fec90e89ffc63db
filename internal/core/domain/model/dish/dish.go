// Package dish models the catalog entry an order is placed against. Only the
// fields order creation needs are modelled; catalog management lives elsewhere.
package dish

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu item owned by one seller.
type Dish struct {
	id             kernel.UUID
	sellerID       kernel.UUID
	name           string
	price          int64
	restaurantName string
	imageURL       string
	isAvailable    bool
	isConstructed  bool
}

// NewDish validates and builds a dish.
func NewDish(
	id, sellerID kernel.UUID,
	name string,
	price int64,
	restaurantName, imageURL string,
	isAvailable bool,
) (*Dish, error) {
	problems := []error{id.Validate(), sellerID.Validate()}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(restaurantName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurantName"))
	}
	if price <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is not greater than 0", price)))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Dish{
		id:             id,
		sellerID:       sellerID,
		name:           name,
		price:          price,
		restaurantName: restaurantName,
		imageURL:       imageURL,
		isAvailable:    isAvailable,
		isConstructed:  true,
	}, nil
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.UUID { return d.id }
func (d *Dish) SellerID() kernel.UUID { return d.sellerID }
func (d *Dish) Name() string { return d.name }
func (d *Dish) Price() int64 { return d.price }
func (d *Dish) RestaurantName() string { return d.restaurantName }
func (d *Dish) ImageURL() string { return d.imageURL }
func (d *Dish) IsAvailable() bool { return d.isAvailable }

// Snapshot captures the dish for an order at creation time.
func (d *Dish) Snapshot() order.ItemSnapshot {
	return order.ItemSnapshot{
		Name:       d.name,
		Price:      d.price,
		Restaurant: d.restaurantName,
		Image:      d.imageURL,
	}
}
