package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DishRepository resolves the dish an order is placed against.
type DishRepository interface {
	Add(ctx context.Context, d *dish.Dish) error
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)
}
