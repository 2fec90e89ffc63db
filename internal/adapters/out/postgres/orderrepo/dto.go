// Package orderrepo maps order aggregates to the orders table.
// The status history is stored as a jsonb column.
package orderrepo

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index;not null"`
	SellerID        uuid.UUID `gorm:"type:uuid;index;not null"`
	DishID          uuid.UUID `gorm:"type:uuid;not null"`
	ItemName        string    `gorm:"not null"`
	ItemRestaurant  string    `gorm:"not null"`
	ItemImage       string
	DeliveryAddress string         `gorm:"not null"`
	Pricing         PricingDTO     `gorm:"embedded"`
	Status          string         `gorm:"type:varchar(32);index;not null"`
	PaymentStatus   string         `gorm:"type:varchar(32);not null"`
	StatusHistory   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"index"`
	UpdatedAt       time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// PricingDTO is the embedded price breakdown, all amounts in whole currency units.
type PricingDTO struct {
	ItemPrice   int64 `gorm:"not null"`
	DeliveryFee int64 `gorm:"not null"`
	PlatformFee int64 `gorm:"not null"`
	GST         int64 `gorm:"column:gst;not null"`
	TotalAmount int64 `gorm:"not null"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	history, err := json.Marshal(o.History())
	if err != nil {
		return OrderDTO{}, err
	}

	item := o.Item()
	pricing := o.Pricing()
	return OrderDTO{
		ID:              o.ID().Google(),
		OrderID:         o.OrderID(),
		CustomerID:      o.CustomerID().Google(),
		SellerID:        o.SellerID().Google(),
		DishID:          o.DishID().Google(),
		ItemName:        item.Name,
		ItemRestaurant:  item.Restaurant,
		ItemImage:       item.Image,
		DeliveryAddress: o.DeliveryAddress(),
		Pricing: PricingDTO{
			ItemPrice:   pricing.ItemPrice(),
			DeliveryFee: pricing.DeliveryFee(),
			PlatformFee: pricing.PlatformFee(),
			GST:         pricing.GST(),
			TotalAmount: pricing.Total(),
		},
		Status:        string(o.Status()),
		PaymentStatus: string(o.PaymentStatus()),
		StatusHistory: datatypes.JSON(history),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CustomerID, dto.SellerID, dto.DishID} {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var history []order.StatusChange
	if len(dto.StatusHistory) > 0 {
		if err := json.Unmarshal(dto.StatusHistory, &history); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         ids[0],
		OrderID:    dto.OrderID,
		CustomerID: ids[1],
		SellerID:   ids[2],
		DishID:     ids[3],
		Item: order.ItemSnapshot{
			Name:       dto.ItemName,
			Price:      dto.Pricing.ItemPrice,
			Restaurant: dto.ItemRestaurant,
			Image:      dto.ItemImage,
		},
		DeliveryAddress: dto.DeliveryAddress,
		Pricing: order.RestorePriceBreakdown(
			dto.Pricing.ItemPrice, dto.Pricing.DeliveryFee, dto.Pricing.PlatformFee,
			dto.Pricing.GST, dto.Pricing.TotalAmount,
		),
		Status:        order.Status(dto.Status),
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		History:       history,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}
