package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
)

// SellerAvailabilityRepository is the durable fallback behind the availability cache.
// Records are created on first save and never deleted, only marked offline.
type SellerAvailabilityRepository interface {
	// Get returns the stored availability or an ObjectNotFoundError.
	Get(ctx context.Context, sellerID kernel.UUID) (seller.Availability, error)

	// Save inserts or replaces the availability record.
	Save(ctx context.Context, availability seller.Availability) error

	// ListOnline returns every record with isOnline=true.
	ListOnline(ctx context.Context) ([]seller.Availability, error)
}
