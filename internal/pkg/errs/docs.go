// Package errs provides standardized error types for the food ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a dish, order, seller, address or notification is missing
//   - SellerOfflineError: order creation rejected by seller availability gating
//   - InvalidTransitionError: an order status change outside the transition table
//   - PersistenceError: the store is unavailable or a write failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Client-visible errors (validation, not found, seller offline, invalid transition)
// carry enough structure for the HTTP adapter to render a specific response.
package errs
