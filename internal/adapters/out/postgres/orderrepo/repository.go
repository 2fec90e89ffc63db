package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert order", err)
	}
	return nil
}

// Update writes the mutable columns: status, payment status, history and updated_at.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":         dto.Status,
			"payment_status": dto.PaymentStatus,
			"status_history": dto.StatusHistory,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.OrderID())
	}
	return nil
}

// Get retrieves an order by its internal id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "id", id.Google(), id.String())
}

// GetByOrderID retrieves an order by its public identifier.
func (r *GormOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	return r.first(r.db.WithContext(ctx), "order_id", orderID, orderID)
}

// GetByOrderIDForUpdate reads the row with SELECT ... FOR UPDATE. Only
// meaningful inside a transaction.
func (r *GormOrderRepository) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*order.Order, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(tx, "order_id", orderID, orderID)
}

func (r *GormOrderRepository) first(db *gorm.DB, column string, value any, display string) (*order.Order, error) {
	var dto OrderDTO
	if err := db.Where(column+" = ?", value).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", display)
		}
		return nil, errs.NewPersistenceError("select order", err)
	}
	return toDomain(dto)
}
