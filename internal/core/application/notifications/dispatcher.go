// Package notifications turns order status changes and standalone triggers
// into one persisted notification plus one best-effort push.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// Message is a standalone notification request. Zero Priority defaults to
// medium and an empty ActionRoute to the notifications screen.
type Message struct {
	UserID      kernel.UUID
	Type        notification.Type
	Title       string
	Message     string
	Metadata    map[string]any
	Priority    notification.Priority
	ActionRoute string
}

// Pushed is the payload of the notification event on the user channel.
type Pushed struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Priority    string         `json:"priority"`
	ActionRoute string         `json:"actionRoute"`
	Read        bool           `json:"read"`
	CreatedAt   time.Time      `json:"createdAt"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}

// NewPushed renders a notification into its push payload.
func NewPushed(n *notification.Notification) Pushed {
	return Pushed{
		ID:          n.ID().String(),
		UserID:      n.UserID().String(),
		Type:        string(n.Type()),
		Title:       n.Title(),
		Message:     n.Message(),
		Metadata:    n.Metadata(),
		Priority:    string(n.Priority()),
		ActionRoute: n.ActionRoute(),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
		ExpiresAt:   n.ExpiresAt(),
	}
}

type Option func(*Dispatcher)

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// Dispatcher writes the notification record first and only then pushes it.
// A push failure is logged and never reaches the caller.
//
// Example:
//
//	dispatcher := notifications.NewDispatcher(notificationRepo, orderRepo, publisher, logger)
//	n, err := dispatcher.DispatchOrderStatus(ctx, o, order.SellerAccepted)
//	// n.Priority() == notification.PriorityHigh, n.ActionRoute() == "order-tracking"
type Dispatcher struct {
	notifications ports.NotificationRepository
	orders        ports.OrderRepository
	publisher     ports.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

func NewDispatcher(
	notificationRepo ports.NotificationRepository,
	orderRepo ports.OrderRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		notifications: notificationRepo,
		orders:        orderRepo,
		publisher:     publisher,
		logger:        logger.With("component", "NotificationDispatcher"),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch persists a notification with the default expiry and pushes it to
// the user's channel. Returns the persisted record.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) (*notification.Notification, error) {
	priority := msg.Priority
	if priority == "" {
		priority = notification.PriorityMedium
	}
	route := msg.ActionRoute
	if route == "" {
		route = notification.RouteNotifications
	}

	n, err := notification.NewNotification(
		kernel.NewUUID(), msg.UserID, msg.Type, msg.Title, msg.Message,
		msg.Metadata, priority, route, d.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = d.notifications.Add(ctx, n); err != nil {
		return nil, err
	}

	if err = d.publisher.Publish(ctx, ports.UserChannel(n.UserID()), ports.EventNotification, NewPushed(n)); err != nil {
		d.logger.WarnContext(ctx, "failed to push notification",
			"notificationId", n.ID().String(), "userId", n.UserID().String(), "error", err)
	}

	return n, nil
}

// DispatchOrderStatus notifies the order's customer about status. Statuses
// without a content mapping produce nothing and return (nil, nil).
func (d *Dispatcher) DispatchOrderStatus(
	ctx context.Context,
	o *order.Order,
	status order.Status,
) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return d.dispatchStatus(ctx, o, status, o.CustomerID())
}

// DispatchForOrderID looks the order up by its public id and notifies userID.
// A missing order is not an error: nothing is dispatched.
func (d *Dispatcher) DispatchForOrderID(
	ctx context.Context,
	orderID string,
	status order.Status,
	userID kernel.UUID,
) (*notification.Notification, error) {
	o, err := d.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.logger.DebugContext(ctx, "order not found, nothing to dispatch", "orderId", orderID)
			return nil, nil
		}
		return nil, err
	}
	return d.dispatchStatus(ctx, o, status, userID)
}

func (d *Dispatcher) dispatchStatus(
	ctx context.Context,
	o *order.Order,
	status order.Status,
	userID kernel.UUID,
) (*notification.Notification, error) {
	content, ok := notification.ContentForStatus(status, o.OrderID(), o.Item().Restaurant)
	if !ok {
		return nil, nil
	}

	return d.Dispatch(ctx, Message{
		UserID:  userID,
		Type:    notification.TypeOrderUpdate,
		Title:   content.Title,
		Message: content.Message,
		Metadata: map[string]any{
			"orderId":    o.OrderID(),
			"status":     status.String(),
			"sellerId":   o.SellerID().String(),
			"restaurant": o.Item().Restaurant,
		},
		Priority:    content.Priority,
		ActionRoute: content.ActionRoute,
	})
}
