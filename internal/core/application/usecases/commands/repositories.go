// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/application/notifications"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW covers order placement and transitions: the dish lookup and the
	// order write share one transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DishRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	DishUoW interface {
		TxManager
		DishRepoFactory
	}

	DishUoWFactory interface {
		Create() DishUoW
	}

	// AddressUoW keeps clear-then-set of the default address atomic.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.AddressRepository()
	//   err = repo.ClearDefaults(ctx, userID)
	//   err = repo.SetDefault(ctx, addressID)
	//
	//   err = uow.Commit(ctx)
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// Collaborators the command handlers call outside the unit of work.
type (
	// SellerAvailability answers the order gating question.
	SellerAvailability interface {
		GetStatus(ctx context.Context, sellerID kernel.UUID) seller.Availability
	}

	// OrderStatusNotifier fans an applied transition out into a notification.
	OrderStatusNotifier interface {
		DispatchOrderStatus(ctx context.Context, o *order.Order, status order.Status) (*notification.Notification, error)
	}

	// NotificationSender persists and pushes a standalone notification.
	NotificationSender interface {
		Dispatch(ctx context.Context, msg notifications.Message) (*notification.Notification, error)
	}
)
