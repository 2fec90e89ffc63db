// Package ports defines the persistence and event contracts the application
// core depends on. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a changed status, payment status and history.
	// Returns an ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderID retrieves an order by its customer-facing identifier.
	GetByOrderID(ctx context.Context, orderID string) (*order.Order, error)

	// GetByOrderIDForUpdate is GetByOrderID with a row lock held until the
	// surrounding transaction ends, so concurrent transitions of the same order
	// are serialized.
	//
	// Example:
	//   uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   o, err := uow.OrderRepository().GetByOrderIDForUpdate(ctx, "ORD-20261018-1A2B3C4D")
	//   changed, err := o.Transition(order.ActorSeller, order.SellerAccepted, now)
	//   uow.OrderRepository().Update(ctx, o)
	//   uow.Commit(ctx)
	GetByOrderIDForUpdate(ctx context.Context, orderID string) (*order.Order, error)
}
