package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AddressRepository defines persistence for saved addresses.
// ClearDefaults followed by Add/SetDefault must run in one transaction.
type AddressRepository interface {
	Add(ctx context.Context, a *address.Address) error
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*address.Address, error)

	// ClearDefaults sets isDefault=false on every address of userID.
	ClearDefaults(ctx context.Context, userID kernel.UUID) error

	// SetDefault sets isDefault=true on one address.
	SetDefault(ctx context.Context, id kernel.UUID) error
}
