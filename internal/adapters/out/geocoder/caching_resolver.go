package geocoder

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// resolveManyConcurrency caps parallel gateway calls per ResolveMany batch.
const resolveManyConcurrency = 8

// CachingResolver implements ports.AddressResolver on top of the persistent
// location cache and an external geocode gateway.
//
// The cache is consulted first and its verdict is final: a resolved entry
// returns its point, an unresolvable entry returns ErrAddressUnresolvable,
// and in neither case is the gateway called again for that address. On a
// cache miss the gateway decides what gets written: a point or a NotFound
// verdict is cached, a transport failure is not, so the next request retries.
type CachingResolver struct {
	locations ports.LocationRepository
	gateway   ports.GeocodeGateway
}

// NewCachingResolver creates a resolver backed by the given cache and gateway.
func NewCachingResolver(locations ports.LocationRepository, gateway ports.GeocodeGateway) *CachingResolver {
	return &CachingResolver{
		locations: locations,
		gateway:   gateway,
	}
}

// Resolve resolves an address to coordinates.
func (r *CachingResolver) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	cached, err := r.locations.Get(ctx, address)
	if err == nil {
		if !cached.Resolved() {
			return kernel.GeoPoint{}, ports.ErrAddressUnresolvable
		}
		return *cached.Point(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.GeoPoint{}, fmt.Errorf("read location cache: %w", err)
	}

	return r.resolveMiss(ctx, address)
}

// ResolveMany resolves a batch of addresses in one cache round trip plus one
// gateway call per miss. Every input address is present in the result; a nil
// point means the address could not be resolved, whatever the cause.
func (r *CachingResolver) ResolveMany(
	ctx context.Context,
	addresses []string,
) (map[string]*kernel.GeoPoint, error) {
	cached, err := r.locations.GetByAddresses(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("read location cache: %w", err)
	}

	resolved := make(map[string]*kernel.GeoPoint, len(addresses))
	misses := make([]string, 0)
	for _, address := range addresses {
		entry, ok := cached[address]
		if !ok {
			if _, queued := resolved[address]; !queued {
				resolved[address] = nil
				misses = append(misses, address)
			}
			continue
		}
		resolved[address] = entry.Point()
	}

	points := make([]*kernel.GeoPoint, len(misses))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(resolveManyConcurrency)
	for i, address := range misses {
		group.Go(func() error {
			point, missErr := r.resolveMiss(groupCtx, address)
			if missErr == nil {
				points[i] = &point
			}
			return nil
		})
	}
	_ = group.Wait()

	for i, address := range misses {
		resolved[address] = points[i]
	}

	return resolved, nil
}

// resolveMiss asks the gateway about an address absent from the cache and
// records its verdict. Only verdicts are cached; transport failures leave no
// trace so a later request can retry.
func (r *CachingResolver) resolveMiss(ctx context.Context, address string) (kernel.GeoPoint, error) {
	point, err := r.gateway.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, ports.ErrAddressNotFound) {
			if cacheErr := r.cacheUnresolvable(ctx, address); cacheErr != nil {
				return kernel.GeoPoint{}, cacheErr
			}
			return kernel.GeoPoint{}, ports.ErrAddressUnresolvable
		}
		return kernel.GeoPoint{}, err
	}

	if cacheErr := r.cacheResolved(ctx, address, point); cacheErr != nil {
		return kernel.GeoPoint{}, cacheErr
	}

	return point, nil
}

func (r *CachingResolver) cacheResolved(ctx context.Context, address string, point kernel.GeoPoint) error {
	entry, err := location.NewResolvedLocation(address, point)
	if err != nil {
		return err
	}
	return r.locations.Add(ctx, entry)
}

func (r *CachingResolver) cacheUnresolvable(ctx context.Context, address string) error {
	entry, err := location.NewUnresolvableLocation(address)
	if err != nil {
		return err
	}
	return r.locations.Add(ctx, entry)
}
