package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies sellers, customers, dishes, orders, notifications and addresses.
// It wraps github.com/google/uuid; the zero value is invalid.
//
// UUID is comparable and therefore usable as a map key, which the availability
// cache relies on.
//
// Example:
//
//	sellerID, err := kernel.UUIDFromString(c.Param("sellerId"))
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("sellerId", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any format accepted by uuid.Parse and rejects the nil UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromGoogle converts a github.com/google/uuid value, as stored in DTOs and
// produced by the generated API types.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	converted := UUID{id: id}
	if err := converted.Validate(); err != nil {
		return UUID{}, err
	}
	return converted, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Google returns the underlying github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
