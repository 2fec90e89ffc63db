package http

import (
	"context"

	"fooddelivery/internal/adapters/out/pgnotify"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/seller"
)

// Availability is the part of the seller registry the HTTP surface drives.
type Availability interface {
	GetStatus(ctx context.Context, sellerID kernel.UUID) seller.Availability
	SetOnline(ctx context.Context, sellerID kernel.UUID, connectionID string) error
	SetOffline(ctx context.Context, sellerID kernel.UUID) error
	UpdateDashboardStatus(ctx context.Context, sellerID kernel.UUID, status seller.DashboardStatus) error
	Heartbeat(ctx context.Context, sellerID kernel.UUID) error
	ListOnline() []seller.Availability
	BulkStatus(ctx context.Context, sellerIDs []kernel.UUID) map[kernel.UUID]seller.Availability
}

// EventStream hands out per-channel subscriptions for the SSE endpoint.
type EventStream interface {
	Subscribe(channel string) (<-chan pgnotify.Envelope, func())
}

// Command handlers

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
}

type TransitionOrderHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (commands.TransitionOrderResult, error)
}

type AddDishHandler interface {
	Handle(ctx context.Context, cmd commands.AddDishCommand) (*dish.Dish, error)
}

type SendNotificationHandler interface {
	Handle(ctx context.Context, cmd commands.SendNotificationCommand) (*notification.Notification, error)
}

type MarkNotificationReadHandler interface {
	Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) (*notification.Notification, error)
}

type MarkAllNotificationsReadHandler interface {
	Handle(ctx context.Context, cmd commands.MarkAllNotificationsReadCommand) (int64, error)
}

type CreateAddressHandler interface {
	Handle(ctx context.Context, cmd commands.CreateAddressCommand) (*address.Address, error)
}

type SetDefaultAddressHandler interface {
	Handle(ctx context.Context, cmd commands.SetDefaultAddressCommand) error
}

// Query handlers

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ListCustomerOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderView, error)
}

type ListSellerOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListSellerOrdersQuery) ([]queries.OrderView, error)
}

type ListNotificationsHandler interface {
	Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error)
}

type CountUnreadNotificationsHandler interface {
	Handle(ctx context.Context, query queries.CountUnreadNotificationsQuery) (int64, error)
}

type ListAddressesHandler interface {
	Handle(ctx context.Context, query queries.ListAddressesQuery) ([]queries.AddressView, error)
}

// Handlers groups every use case the server dispatches to.
type Handlers struct {
	CreateOrder              CreateOrderHandler
	TransitionOrder          TransitionOrderHandler
	AddDish                  AddDishHandler
	SendNotification         SendNotificationHandler
	MarkNotificationRead     MarkNotificationReadHandler
	MarkAllNotificationsRead MarkAllNotificationsReadHandler
	CreateAddress            CreateAddressHandler
	SetDefaultAddress        SetDefaultAddressHandler

	GetOrder                 GetOrderHandler
	ListCustomerOrders       ListCustomerOrdersHandler
	ListSellerOrders         ListSellerOrdersHandler
	ListNotifications        ListNotificationsHandler
	CountUnreadNotifications CountUnreadNotificationsHandler
	ListAddresses            ListAddressesHandler
}
