package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Event names published by the core.
const (
	EventNewOrder            = "new-order"
	EventSellerStatusChanged = "seller-status-changed"
	EventOrderStatusUpdated  = "order-status-updated"
	EventNotification        = "notification"
)

// BroadcastChannel receives events visible to every connected client.
const BroadcastChannel = "sellers"

// EventPublisher is the real-time push sink. Implementations are best effort:
// callers log a returned error and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}

// SellerChannel is the channel carrying new-order notices and availability
// changes for one seller.
func SellerChannel(sellerID kernel.UUID) string {
	return "seller-" + sellerID.String()
}

// UserChannel is the per-user channel for order status and notification pushes.
func UserChannel(userID kernel.UUID) string {
	return userID.String()
}
