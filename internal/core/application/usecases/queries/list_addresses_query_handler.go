package queries

import (
	"context"
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressView is a saved address as listed to its owner.
type AddressView struct {
	ID         kernel.UUID
	Label      string
	Line       string
	City       string
	PostalCode string
	IsDefault  bool
	CreatedAt  time.Time
}

type ListAddressesQueryHandler struct {
	db *gorm.DB
}

func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

func (h ListAddressesQueryHandler) Handle(ctx context.Context, query ListAddressesQuery) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			line,
			city,
			postal_code,
			is_default,
			created_at
		FROM addresses
		WHERE user_id = ?
		ORDER BY is_default DESC, created_at DESC
	`, query.UserID().Google()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]AddressView, 0)
	for rows.Next() {
		var view AddressView
		var id uuid.UUID
		var postalCode sql.NullString

		if err = rows.Scan(&id, &view.Label, &view.Line, &view.City, &postalCode, &view.IsDefault, &view.CreatedAt); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		view.PostalCode = postalCode.String
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
