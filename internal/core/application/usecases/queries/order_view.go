package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is the read model returned by every order query.
type OrderView struct {
	ID              kernel.UUID
	OrderID         string
	CustomerID      kernel.UUID
	SellerID        kernel.UUID
	DishID          kernel.UUID
	ItemName        string
	Restaurant      string
	ItemImage       string
	DeliveryAddress string
	ItemPrice       int64
	DeliveryFee     int64
	PlatformFee     int64
	GST             int64
	TotalAmount     int64
	Status          order.Status
	PaymentStatus   order.PaymentStatus
	History         []order.StatusChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const orderViewColumns = `
	id,
	order_id,
	customer_id,
	seller_id,
	dish_id,
	item_name,
	item_restaurant,
	item_image,
	delivery_address,
	item_price,
	delivery_fee,
	platform_fee,
	gst,
	total_amount,
	status,
	payment_status,
	status_history,
	created_at,
	updated_at`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var id, customerID, sellerID, dishID uuid.UUID
	var itemImage sql.NullString
	var status, paymentStatus string
	var history []byte

	err := rows.Scan(
		&id,
		&view.OrderID,
		&customerID,
		&sellerID,
		&dishID,
		&view.ItemName,
		&view.Restaurant,
		&itemImage,
		&view.DeliveryAddress,
		&view.ItemPrice,
		&view.DeliveryFee,
		&view.PlatformFee,
		&view.GST,
		&view.TotalAmount,
		&status,
		&paymentStatus,
		&history,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	for _, pair := range []struct {
		dst *kernel.UUID
		src uuid.UUID
	}{{&view.ID, id}, {&view.CustomerID, customerID}, {&view.SellerID, sellerID}, {&view.DishID, dishID}} {
		converted, convErr := kernel.UUIDFromGoogle(pair.src)
		if convErr != nil {
			return OrderView{}, convErr
		}
		*pair.dst = converted
	}

	view.ItemImage = itemImage.String
	view.Status = order.Status(status)
	view.PaymentStatus = order.PaymentStatus(paymentStatus)
	if len(history) > 0 {
		if err = json.Unmarshal(history, &view.History); err != nil {
			return OrderView{}, err
		}
	}

	return view, nil
}

func collectOrderViews(rows *sql.Rows) ([]OrderView, error) {
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
