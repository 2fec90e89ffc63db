package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// maxOrderIDAttempts bounds how many internal ids are drawn when the derived
// public order id is already taken for the day.
const maxOrderIDAttempts = 5

// CreateOrderResult is what the customer gets back: both identifiers and the
// server-computed breakdown.
type CreateOrderResult struct {
	ID      kernel.UUID
	OrderID string
	Status  order.Status
	Pricing order.PriceBreakdown
}

// NewOrderEvent is published on the seller channel so the seller dashboard can
// render an accept/reject prompt.
type NewOrderEvent struct {
	OrderID         string    `json:"orderId"`
	CustomerID      string    `json:"customerId"`
	DishID          string    `json:"dishId"`
	ItemName        string    `json:"itemName"`
	ItemImage       string    `json:"itemImage,omitempty"`
	Restaurant      string    `json:"restaurant"`
	ItemPrice       int64     `json:"itemPrice"`
	TotalAmount     int64     `json:"totalAmount"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateOrderCommandHandler places orders gated by seller availability.
//
// The availability check runs strictly before any write: a rejected attempt
// leaves no order behind. The check-then-write is not atomic; a seller going
// offline in between still receives the order and may reject it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, registry, publisher, logger)
//	cmd, _ := NewCreateOrderCommand(customerID, dishID, "12 MG Road", nil)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.Status == order.PendingSeller
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	availability SellerAvailability
	publisher    ports.EventPublisher
	logger       *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	availability SellerAvailability,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		publisher:    publisher,
		logger:       logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle resolves the dish, gates on the seller, persists the order in
// pending_seller and notifies the seller channel.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DishRepository().Get(ctx, cmd.DishID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !d.IsAvailable() {
		return CreateOrderResult{}, errs.NewValueIsInvalidErrorWithCause(
			"dishId", fmt.Errorf("dish %s is not available", d.ID()))
	}

	status := h.availability.GetStatus(ctx, d.SellerID())
	if !status.CanAcceptOrders() {
		return CreateOrderResult{}, errs.NewSellerOfflineError(
			d.SellerID().String(),
			status.IsOnline(),
			status.DashboardStatus().String(),
			status.LastActiveAt(),
		)
	}

	orders := uow.OrderRepository()
	o, err := h.newOrder(ctx, orders, cmd, d)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if clientTotal, ok := cmd.ClientTotal(); ok && !o.Pricing().Matches(clientTotal) {
		h.logger.WarnContext(ctx, "client total differs from server total, using server total",
			"orderId", o.OrderID(), "clientTotal", clientTotal, "serverTotal", o.Pricing().Total())
	}

	if err = orders.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.publishNewOrder(ctx, o)

	return CreateOrderResult{
		ID:      o.ID(),
		OrderID: o.OrderID(),
		Status:  o.Status(),
		Pricing: o.Pricing(),
	}, nil
}

// newOrder builds the order, drawing a fresh internal id while the public order
// id derived from it collides with an existing order.
func (h *CreateOrderCommandHandler) newOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	cmd CreateOrderCommand,
	d *dish.Dish,
) (*order.Order, error) {
	now := time.Now()
	for range maxOrderIDAttempts {
		o, err := order.NewOrder(
			kernel.NewUUID(), cmd.CustomerID(), d.SellerID(), d.ID(),
			d.Snapshot(), cmd.DeliveryAddress(), now,
		)
		if err != nil {
			return nil, err
		}

		_, err = orders.GetByOrderID(ctx, o.OrderID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return o, nil
		}
		if err != nil {
			return nil, err
		}
		h.logger.WarnContext(ctx, "public order id already taken, drawing a new one", "orderId", o.OrderID())
	}
	return nil, errs.NewPersistenceError("allocate order id",
		fmt.Errorf("no free order id after %d attempts", maxOrderIDAttempts))
}

func (h *CreateOrderCommandHandler) publishNewOrder(ctx context.Context, o *order.Order) {
	event := NewOrderEvent{
		OrderID:         o.OrderID(),
		CustomerID:      o.CustomerID().String(),
		DishID:          o.DishID().String(),
		ItemName:        o.Item().Name,
		ItemImage:       o.Item().Image,
		Restaurant:      o.Item().Restaurant,
		ItemPrice:       o.Pricing().ItemPrice(),
		TotalAmount:     o.Pricing().Total(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
	}
	if err := h.publisher.Publish(ctx, ports.SellerChannel(o.SellerID()), ports.EventNewOrder, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish new order", "orderId", o.OrderID(), "error", err)
	}
}
