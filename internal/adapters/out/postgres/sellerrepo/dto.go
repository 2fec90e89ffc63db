// Package sellerrepo persists seller availability, the durable fallback behind
// the in-memory availability cache.
package sellerrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

type AvailabilityDTO struct {
	SellerID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsOnline        bool      `gorm:"index;not null"`
	DashboardStatus string    `gorm:"type:varchar(16);not null"`
	LastActiveAt    time.Time
	ConnectionID    *string
	UpdatedAt       time.Time
}

func (AvailabilityDTO) TableName() string {
	return "seller_availability"
}

func fromDomain(a seller.Availability) AvailabilityDTO {
	return AvailabilityDTO{
		SellerID:        a.SellerID().Google(),
		IsOnline:        a.IsOnline(),
		DashboardStatus: a.DashboardStatus().String(),
		LastActiveAt:    a.LastActiveAt(),
		ConnectionID:    a.ConnectionID(),
	}
}

func toDomain(dto AvailabilityDTO) (seller.Availability, error) {
	id, err := kernel.UUIDFromGoogle(dto.SellerID)
	if err != nil {
		return seller.Availability{}, err
	}
	return seller.NewAvailability(
		id, dto.IsOnline, seller.DashboardStatus(dto.DashboardStatus), dto.LastActiveAt, dto.ConnectionID,
	)
}
