package order

import (
	"fmt"
	"slices"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending_seller ──> seller_accepted ──> payment_completed ──> preparing ──> ready ──> out_for_delivery ──> delivered
//	      │                  │
//	      ├──> seller_rejected
//	      └──────────────────┴──> cancelled   (admin may cancel from any non-terminal status)
//
// Terminal statuses: delivered, seller_rejected, cancelled.
type Status string

const (
	Unknown          Status = ""
	PendingSeller    Status = "pending_seller"
	SellerAccepted   Status = "seller_accepted"
	SellerRejected   Status = "seller_rejected"
	PaymentCompleted Status = "payment_completed"
	Preparing        Status = "preparing"
	Ready            Status = "ready"
	OutForDelivery   Status = "out_for_delivery"
	Delivered        Status = "delivered"
	Cancelled        Status = "cancelled"
)

type edge struct {
	to     Status
	actors []Actor
}

// transitionTable lists every allowed (current -> next, actors) row except the
// admin cancellation, which applies to any non-terminal status.
func transitionTable() map[Status][]edge {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]edge{
		PendingSeller: {
			{to: SellerAccepted, actors: []Actor{ActorSeller}},
			{to: SellerRejected, actors: []Actor{ActorSeller}},
			{to: Cancelled, actors: []Actor{ActorCustomer, ActorSystem}},
		},
		SellerAccepted: {
			{to: PaymentCompleted, actors: []Actor{ActorPayment, ActorSystem}},
			{to: Cancelled, actors: []Actor{ActorCustomer, ActorSeller, ActorAdmin}},
		},
		PaymentCompleted: {
			{to: Preparing, actors: []Actor{ActorSeller}},
		},
		Preparing: {
			{to: Ready, actors: []Actor{ActorSeller}},
		},
		Ready: {
			{to: OutForDelivery, actors: []Actor{ActorSeller, ActorSystem}},
		},
		OutForDelivery: {
			{to: Delivered, actors: []Actor{ActorSeller, ActorSystem}},
		},
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		PendingSeller, SellerAccepted, PaymentCompleted, Preparing, Ready,
		OutForDelivery, Delivered, SellerRejected, Cancelled,
	}
}

// Validate rejects Unknown and any value outside AllStatuses.
func (s Status) Validate() error {
	if !slices.Contains(AllStatuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == SellerRejected || s == Cancelled
}

// CanTransition reports whether actor may move an order from s to target.
func (s Status) CanTransition(target Status, actor Actor) bool {
	if s.IsTerminal() || s.Validate() != nil {
		return false
	}
	if target == Cancelled && actor == ActorAdmin {
		return true
	}
	for _, e := range transitionTable()[s] {
		if e.to == target && slices.Contains(e.actors, actor) {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the table allows actor to move from s to it.
//
// Returns:
//   - (target, nil) on a valid transition
//   - ("", *errs.ValueIsInvalidError) if target or actor is not a known value
//   - ("", *errs.InvalidTransitionError) if no row matches
//
// Example:
//
//	next, err := order.PendingSeller.TransitionTo(order.SellerAccepted, order.ActorSeller)
//	// next == order.SellerAccepted
func (s Status) TransitionTo(target Status, actor Actor) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if err := actor.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransition(target, actor) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String(), actor.String())
	}
	return target, nil
}

// NextStatuses lists the statuses actor may move an order in status s to.
func (s Status) NextStatuses(actor Actor) []Status {
	next := make([]Status, 0)
	for _, candidate := range AllStatuses() {
		if s.CanTransition(candidate, actor) {
			next = append(next, candidate)
		}
	}
	return next
}
