package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListSellerOrdersQueryIsNotConstructed = errors.New(
		"ListSellerOrdersQuery must be created via NewListSellerOrdersQuery constructor",
	)
)

// ListSellerOrdersQuery lists a seller's orders, newest first, optionally
// restricted to one status.
//
// Example:
//
//	pending := order.PendingSeller
//	query, err := NewListSellerOrdersQuery(sellerID, &pending)
type ListSellerOrdersQuery struct {
	sellerID kernel.UUID
	status   *order.Status
	guard    guard.ConstructorGuard
}

func NewListSellerOrdersQuery(sellerID kernel.UUID, status *order.Status) (ListSellerOrdersQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return ListSellerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListSellerOrdersQuery{}, err
		}
		s := *status
		status = &s
	}
	return ListSellerOrdersQuery{sellerID: sellerID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListSellerOrdersQueryIsNotConstructed)
}

func (q ListSellerOrdersQuery) SellerID() kernel.UUID { return q.sellerID }

// Status returns the filter, if any.
func (q ListSellerOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return "", false
	}
	return *q.status, true
}
