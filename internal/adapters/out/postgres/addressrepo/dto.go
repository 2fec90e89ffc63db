// Package addressrepo persists saved delivery addresses.
package addressrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO carries a partial unique index on user_id where is_default, so the
// database rejects a second default for the same user.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_addresses_single_default,where:is_default"`
	Label      string    `gorm:"not null"`
	Line       string    `gorm:"not null"`
	City       string    `gorm:"not null"`
	PostalCode string
	IsDefault  bool `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID().Google(),
		UserID:     a.UserID().Google(),
		Label:      a.Label(),
		Line:       a.Line(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		IsDefault:  a.IsDefault(),
		CreatedAt:  a.CreatedAt(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	return address.NewAddress(id, userID, dto.Label, dto.Line, dto.City, dto.PostalCode, dto.IsDefault, dto.CreatedAt)
}
