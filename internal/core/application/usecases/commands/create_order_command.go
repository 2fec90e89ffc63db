package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer placing an order for one dish.
// The client may send the total it displayed; it is only compared against the
// server-computed breakdown, never trusted.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, dishID, "12 MG Road, Bengaluru", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	var offline *errs.SellerOfflineError
//	if errors.As(err, &offline) {
//	    // 403 with offline.Code == "SELLER_OFFLINE"
//	}
//	fmt.Printf("Order %s total %d", result.OrderID, result.Pricing.Total())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	dishID          kernel.UUID
	deliveryAddress string
	clientTotal     *int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids and the delivery address. clientTotal may
// be nil; when present it must be positive.
func NewCreateOrderCommand(
	customerID, dishID kernel.UUID,
	deliveryAddress string,
	clientTotal *int64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setClientTotal(clientTotal),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ClientTotal returns the total the client displayed, if it sent one.
func (c CreateOrderCommand) ClientTotal() (int64, bool) {
	if c.clientTotal == nil {
		return 0, false
	}
	return *c.clientTotal, true
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dishId", err)
	}
	c.dishID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setClientTotal(total *int64) error {
	if total == nil {
		return nil
	}
	if *total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%d is not greater than 0", *total))
	}
	v := *total
	c.clientTotal = &v
	return nil
}
