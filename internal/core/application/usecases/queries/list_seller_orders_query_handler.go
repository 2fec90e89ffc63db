package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListSellerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListSellerOrdersQueryHandler(db *gorm.DB) ListSellerOrdersQueryHandler {
	return ListSellerOrdersQueryHandler{db: db}
}

func (h ListSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListSellerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `SELECT` + orderViewColumns + `
		FROM orders
		WHERE seller_id = ?`
	args := []any{query.SellerID().Google()}
	if status, ok := query.Status(); ok {
		stmt += ` AND status = ?`
		args = append(args, string(status))
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderViews(rows)
}
