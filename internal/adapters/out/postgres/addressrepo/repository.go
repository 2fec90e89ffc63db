package addressrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Add(ctx context.Context, a *address.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Select("*").Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert address", err)
	}
	return nil
}

func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, errs.NewPersistenceError("select address", err)
	}
	return toDomain(dto)
}

// ListByUser returns the default address first, then the rest newest first.
func (r *GormAddressRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*address.Address, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AddressDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Google()).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list addresses", err)
	}

	result := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *GormAddressRepository) ClearDefaults(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("user_id = ? AND is_default = ?", userID.Google(), true).
		Update("is_default", false).Error
	if err != nil {
		return errs.NewPersistenceError("clear default addresses", err)
	}
	return nil
}

func (r *GormAddressRepository) SetDefault(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", id.Google()).
		Update("is_default", true)
	if result.Error != nil {
		return errs.NewPersistenceError("set default address", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.String())
	}
	return nil
}
