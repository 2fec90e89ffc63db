package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ItemSnapshot is the dish as it looked when the order was placed. Later edits to
// the dish never change an existing order.
type ItemSnapshot struct {
	Name       string
	Price      int64
	Restaurant string
	Image      string
}

// Validate checks the snapshot carries a name, a restaurant and a positive price.
func (s ItemSnapshot) Validate() error {
	var problems []error
	if strings.TrimSpace(s.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item name"))
	}
	if strings.TrimSpace(s.Restaurant) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurant name"))
	}
	if s.Price <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"item price", fmt.Errorf("%d is not greater than 0", s.Price)))
	}
	return errors.Join(problems...)
}

// StatusChange is one entry of an order's status history.
type StatusChange struct {
	Status Status    `json:"status"`
	Actor  Actor     `json:"actor"`
	At     time.Time `json:"at"`
}

// Order is the aggregate root for a customer's food order against one seller.
//
// Order follows these invariants:
//   - Identity is an internal UUID plus a stable customer-facing order id
//   - The item snapshot and price breakdown are fixed at creation
//   - Status only moves along the transition table; terminal statuses never change
//   - Every applied transition is appended to the status history
type Order struct {
	id              kernel.UUID
	orderID         string
	customerID      kernel.UUID
	sellerID        kernel.UUID
	dishID          kernel.UUID
	item            ItemSnapshot
	deliveryAddress string
	pricing         PriceBreakdown
	status          Status
	paymentStatus   PaymentStatus
	history         []StatusChange
	createdAt       time.Time
	updatedAt       time.Time
	isConstructed   bool
}

// NewOrder creates an order in pending_seller with a server-computed price breakdown.
//
// Parameters:
//   - id: internal identifier
//   - customerID, sellerID, dishID: owning parties and the ordered dish
//   - item: dish snapshot; its Price feeds the fee formula
//   - deliveryAddress: free-form delivery address, required
//   - now: creation time, also the first history entry
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, sellerID, dishID,
//	    order.ItemSnapshot{Name: "Veg Biryani", Price: 200, Restaurant: "Spice Route"},
//	    "12 MG Road, Bengaluru", time.Now())
//	// o.Status() == order.PendingSeller, o.Pricing().Total() == 240
func NewOrder(
	id, customerID, sellerID, dishID kernel.UUID,
	item ItemSnapshot,
	deliveryAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        PendingSeller,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(customerID, sellerID, dishID),
		o.setItem(item),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	pricing, err := NewPriceBreakdown(item.Price)
	if err != nil {
		return nil, err
	}
	o.pricing = pricing
	o.orderID = NewPublicOrderID(id, now)
	o.history = []StatusChange{{Status: PendingSeller, Actor: ActorCustomer, At: now}}

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	OrderID         string
	CustomerID      kernel.UUID
	SellerID        kernel.UUID
	DishID          kernel.UUID
	Item            ItemSnapshot
	DeliveryAddress string
	Pricing         PriceBreakdown
	Status          Status
	PaymentStatus   PaymentStatus
	History         []StatusChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder rebuilds an order loaded from storage without re-running the
// creation rules (the fee formula in particular).
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		orderID:       s.OrderID,
		pricing:       s.Pricing,
		paymentStatus: s.PaymentStatus,
		history:       append([]StatusChange(nil), s.History...),
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setParties(s.CustomerID, s.SellerID, s.DishID),
		o.setItem(s.Item),
		o.setDeliveryAddress(s.DeliveryAddress),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.OrderID) == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	o.status = s.Status

	return o, nil
}

// NewPublicOrderID derives the customer-facing identifier ORD-YYYYMMDD-XXXXXXXX
// from the creation date and the first eight hex digits of the internal id.
func NewPublicOrderID(id kernel.UUID, now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(id.String()[:8]))
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the internal identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderID returns the stable customer-facing identifier.
func (o *Order) OrderID() string { return o.orderID }

func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) SellerID() kernel.UUID { return o.sellerID }
func (o *Order) DishID() kernel.UUID { return o.dishID }
func (o *Order) Item() ItemSnapshot { return o.item }
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }
func (o *Order) Pricing() PriceBreakdown { return o.pricing }
func (o *Order) Status() Status { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// History returns a copy of the applied status changes, oldest first.
func (o *Order) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// Transition moves the order to target on behalf of actor.
//
// Returns:
//   - (true, nil) when the status changed
//   - (false, nil) when target equals the current status (idempotent retry)
//   - (false, err) when target/actor is unknown or the table has no matching row;
//     the order is left untouched
//
// Example:
//
//	changed, err := o.Transition(order.ActorSeller, order.SellerAccepted, time.Now())
//	if err != nil {
//	    var invalid *errs.InvalidTransitionError
//	    if errors.As(err, &invalid) { /* 409 */ }
//	}
func (o *Order) Transition(actor Actor, target Status, at time.Time) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	if target == o.status {
		return false, nil
	}

	next, err := o.status.TransitionTo(target, actor)
	if err != nil {
		return false, err
	}

	o.status = next
	o.paymentStatus = o.paymentStatus.after(next)
	o.history = append(o.history, StatusChange{Status: next, Actor: actor, At: at})
	o.updatedAt = at
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID, sellerID, dishID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), sellerID.Validate(), dishID.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order parties", err)
	}
	o.customerID = customerID
	o.sellerID = sellerID
	o.dishID = dishID
	return nil
}

func (o *Order) setItem(item ItemSnapshot) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.item = item
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}
