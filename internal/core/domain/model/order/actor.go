package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Actor is the role requesting a status transition.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorSeller   Actor = "seller"
	ActorSystem   Actor = "system"
	ActorAdmin    Actor = "admin"
	// ActorPayment is the payment gateway webhook.
	ActorPayment Actor = "payment"
)

// Validate rejects roles outside the known set.
func (a Actor) Validate() error {
	switch a {
	case ActorCustomer, ActorSeller, ActorSystem, ActorAdmin, ActorPayment:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("actor is invalid", fmt.Errorf("%q is not a valid actor", string(a)))
	}
}

func (a Actor) String() string {
	return string(a)
}
