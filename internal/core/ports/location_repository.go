package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/location"
)

// LocationRepository is the persistent geocode cache keyed by the raw
// address string. Entries are write once: Add must not overwrite a row
// another writer stored first, so concurrent resolvers of the same address
// converge on a single cached verdict.
type LocationRepository interface {
	// Add stores a cache entry unless one already exists for the address.
	// Losing the race to another writer is not an error.
	Add(ctx context.Context, aggregate *location.Location) error

	// Get retrieves the entry for a single address.
	// Returns errs.ErrObjectNotFound when the address was never resolved.
	Get(ctx context.Context, address string) (*location.Location, error)

	// GetByAddresses retrieves the entries for a batch of addresses in one
	// round trip. Addresses without an entry are simply absent from the
	// result.
	GetByAddresses(ctx context.Context, addresses []string) (map[string]*location.Location, error)
}
