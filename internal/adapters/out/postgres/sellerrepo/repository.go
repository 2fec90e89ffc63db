package sellerrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAvailabilityRepository implements SellerAvailabilityRepository using GORM.
type GormAvailabilityRepository struct {
	db *gorm.DB
}

func NewGormAvailabilityRepository(db *gorm.DB) *GormAvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

// Get returns the stored availability or an ObjectNotFoundError.
func (r *GormAvailabilityRepository) Get(ctx context.Context, sellerID kernel.UUID) (seller.Availability, error) {
	if err := sellerID.Validate(); err != nil {
		return seller.Availability{}, err
	}

	var dto AvailabilityDTO
	if err := r.db.WithContext(ctx).First(&dto, "seller_id = ?", sellerID.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return seller.Availability{}, errs.NewObjectNotFoundError("seller", sellerID.String())
		}
		return seller.Availability{}, errs.NewPersistenceError("select seller availability", err)
	}

	return toDomain(dto)
}

// Save upserts the record keyed by seller id.
func (r *GormAvailabilityRepository) Save(ctx context.Context, availability seller.Availability) error {
	dto := fromDomain(availability)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "seller_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_online", "dashboard_status", "last_active_at", "connection_id", "updated_at",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("save seller availability", err)
	}
	return nil
}

// ListOnline returns every record with is_online = true.
func (r *GormAvailabilityRepository) ListOnline(ctx context.Context) ([]seller.Availability, error) {
	var dtos []AvailabilityDTO
	if err := r.db.WithContext(ctx).Where("is_online = ?", true).Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("list online sellers", err)
	}

	result := make([]seller.Availability, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}
