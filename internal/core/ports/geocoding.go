package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrAddressNotFound is returned by a GeocodeGateway when the external
	// geocoder answered successfully but found no match for the address.
	// This verdict is cacheable.
	ErrAddressNotFound = errors.New("address not found by geocoder")

	// ErrAddressUnresolvable is returned by an AddressResolver when the
	// cache records the address as permanently unresolvable.
	ErrAddressUnresolvable = errors.New("address is known to be unresolvable")
)

// GeocodeGateway calls an external geocoding service. Transport failures
// (network errors, non-2xx responses, malformed payloads) are returned as
// ordinary errors and must not be confused with ErrAddressNotFound.
type GeocodeGateway interface {
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}

// AddressResolver resolves an address to coordinates, consulting the
// persistent cache before the external geocoder. A cached verdict, positive
// or negative, is final: the resolver never re-geocodes a cached address.
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (kernel.GeoPoint, error)

	// ResolveMany resolves a batch of addresses. Every input address is
	// present in the result; a nil point means the address could not be
	// resolved, whatever the cause. Fails only when the cache itself
	// cannot be read.
	ResolveMany(ctx context.Context, addresses []string) (map[string]*kernel.GeoPoint, error)
}
