package dishrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

func (r *GormDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	// Select("*") so an explicit false is written instead of the column default.
	if err := r.db.WithContext(ctx).Select("*").Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert dish", err)
	}
	return nil
}

func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, errs.NewPersistenceError("select dish", err)
	}
	return toDomain(dto)
}
