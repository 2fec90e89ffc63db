package notification

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
)

const (
	RouteOrderTracking = "order-tracking"
	RouteOrderHistory  = "order-history"
	RouteNotifications = "notifications"
)

// Content is a rendered notification title, message, priority and action route.
type Content struct {
	Title       string
	Message     string
	Priority    Priority
	ActionRoute string
}

type template struct {
	title       string
	message     string // %[1]s is the order id, %[2]s the restaurant name
	priority    Priority
	actionRoute string
}

func statusTemplates() map[order.Status]template {
	//nolint:exhaustive // pending_seller produces no customer notification
	return map[order.Status]template{
		order.SellerAccepted: {
			"Order Accepted", "%[2]s has accepted your order %[1]s.",
			PriorityHigh, RouteOrderTracking,
		},
		order.PaymentCompleted: {
			"Payment Confirmed", "Payment received for order %[1]s. %[2]s will start preparing it shortly.",
			PriorityHigh, RouteOrderTracking,
		},
		order.Preparing: {
			"Order Being Prepared", "%[2]s is preparing your order %[1]s.",
			PriorityMedium, RouteOrderTracking,
		},
		order.Ready: {
			"Order Ready", "Your order %[1]s from %[2]s is ready.",
			PriorityHigh, RouteOrderTracking,
		},
		order.OutForDelivery: {
			"Out for Delivery", "Your order %[1]s from %[2]s is on its way.",
			PriorityUrgent, RouteOrderTracking,
		},
		order.Delivered: {
			"Order Delivered", "Your order %[1]s from %[2]s has been delivered. Enjoy your meal!",
			PriorityHigh, RouteOrderHistory,
		},
		order.SellerRejected: {
			"Order Rejected", "Unfortunately %[2]s could not accept your order %[1]s.",
			PriorityUrgent, RouteOrderHistory,
		},
		order.Cancelled: {
			"Order Cancelled", "Your order %[1]s from %[2]s has been cancelled.",
			PriorityHigh, RouteOrderHistory,
		},
	}
}

// ContentForStatus renders the notification for an order entering status.
// The second result is false for statuses with no mapping; callers treat that
// as "send nothing".
func ContentForStatus(status order.Status, orderID, restaurant string) (Content, bool) {
	tmpl, ok := statusTemplates()[status]
	if !ok {
		return Content{}, false
	}
	return Content{
		Title:       tmpl.title,
		Message:     fmt.Sprintf(tmpl.message, orderID, restaurant),
		Priority:    tmpl.priority,
		ActionRoute: tmpl.actionRoute,
	}, true
}
