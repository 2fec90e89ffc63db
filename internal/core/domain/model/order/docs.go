// Package order provides the Order aggregate and the fixed status graph that
// drives it from pending_seller to one of its terminal statuses.
//
// The package includes:
//   - Order: the aggregate root (identity, item snapshot, price breakdown, status, payment status, history)
//   - Status and Actor: the transition table keyed by (current status, actor) -> next status
//   - PriceBreakdown: the server-side fee formula
//   - ItemSnapshot: dish data captured at creation time and never re-read
//
// Key business rules:
//   - Orders start in pending_seller with payment pending
//   - A status only advances along the transition table; terminal statuses are immutable
//   - Requesting the current status again is a successful no-op
//   - Admins may cancel any non-terminal order
//
// The graph is fixed and small on purpose; it is not user-configurable.
package order
