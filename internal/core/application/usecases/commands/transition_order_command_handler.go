package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// TransitionOrderResult reports the order after the call and whether the
// status actually changed.
type TransitionOrderResult struct {
	Order   *order.Order
	Changed bool
}

// OrderStatusEvent is published on the customer channel after a transition.
type OrderStatusEvent struct {
	OrderID        string    `json:"orderId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus"`
	PaymentStatus  string    `json:"paymentStatus"`
	Actor          string    `json:"actor"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TransitionOrderCommandHandler applies status transitions.
//
// The order row is locked for the duration of the transaction so concurrent
// requests for the same order are serialized. After commit the notifier and
// the customer push run; their failures are logged, the committed status
// change stands.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, dispatcher, publisher, logger)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.ActorPayment, order.PaymentCompleted)
//
//	result, err := handler.Handle(ctx, cmd)
//	var invalid *errs.InvalidTransitionError
//	if errors.As(err, &invalid) {
//	    // 409
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderStatusNotifier
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderStatusNotifier,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger.With("component", "TransitionOrderCommandHandler"),
	}
}

// Handle returns Changed=false without writing anything when the order already
// is in the target status.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByOrderIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return TransitionOrderResult{}, err
	}

	previous := o.Status()
	changed, err := o.Transition(cmd.Actor(), cmd.Target(), time.Now())
	if err != nil {
		return TransitionOrderResult{}, err
	}
	if !changed {
		return TransitionOrderResult{Order: o}, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return TransitionOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"orderId", o.OrderID(), "from", previous.String(), "to", o.Status().String(), "actor", cmd.Actor().String())

	if _, err = h.notifier.DispatchOrderStatus(ctx, o, o.Status()); err != nil {
		h.logger.ErrorContext(ctx, "failed to dispatch order notification",
			"orderId", o.OrderID(), "status", o.Status().String(), "error", err)
	}

	event := OrderStatusEvent{
		OrderID:        o.OrderID(),
		Status:         o.Status().String(),
		PreviousStatus: previous.String(),
		PaymentStatus:  o.PaymentStatus().String(),
		Actor:          cmd.Actor().String(),
		UpdatedAt:      o.UpdatedAt(),
	}
	if err = h.publisher.Publish(ctx, ports.UserChannel(o.CustomerID()), ports.EventOrderStatusUpdated, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order status", "orderId", o.OrderID(), "error", err)
	}

	return TransitionOrderResult{Order: o, Changed: true}, nil
}
