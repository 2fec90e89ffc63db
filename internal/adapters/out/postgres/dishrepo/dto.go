// Package dishrepo persists the dish catalog orders are placed against.
package dishrepo

import (
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DishDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"not null"`
	Price          int64     `gorm:"not null"`
	RestaurantName string    `gorm:"not null"`
	ImageURL       string
	IsAvailable    bool `gorm:"not null;default:true"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:             d.ID().Google(),
		SellerID:       d.SellerID().Google(),
		Name:           d.Name(),
		Price:          d.Price(),
		RestaurantName: d.RestaurantName(),
		ImageURL:       d.ImageURL(),
		IsAvailable:    d.IsAvailable(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromGoogle(dto.SellerID)
	if err != nil {
		return nil, err
	}
	return dish.NewDish(id, sellerID, dto.Name, dto.Price, dto.RestaurantName, dto.ImageURL, dto.IsAvailable)
}
