// Package location contains the geocode cache entry aggregate. Each entry
// pins an address string to either resolved coordinates or a permanent
// "known unresolvable" verdict. Entries are immutable once created: an
// address is never re-geocoded after its first resolution, success or
// failure, which bounds external geocoding API call volume at the cost of
// never correcting a stale resolution.
package location

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLocationIsNotConstructed is returned when a Location instance was
	// not created through one of the factory methods.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewResolvedLocation or NewUnresolvableLocation constructors")
)

// Location is a geocode cache entry keyed by the raw address string.
//
// Invariants:
//   - address is non-empty and unique within the store
//   - a resolved entry always carries a valid GeoPoint
//   - an unresolvable entry never carries a point
//   - entries are never updated in place
type Location struct {
	address   string
	point     *kernel.GeoPoint
	resolved  bool
	updatedAt time.Time

	isConstructed bool
}

// NewResolvedLocation creates a cache entry for a successfully geocoded
// address.
func NewResolvedLocation(address string, point kernel.GeoPoint) (*Location, error) {
	l := &Location{
		resolved:      true,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(l.setAddress(address), l.setPoint(point)); err != nil {
		return nil, err
	}

	return l, nil
}

// NewUnresolvableLocation creates a cache entry recording that the geocoder
// affirmatively found nothing for the address. The verdict is permanent for
// the lifetime of the entry.
func NewUnresolvableLocation(address string) (*Location, error) {
	l := &Location{
		resolved:      false,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := l.setAddress(address); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocation reconstructs a cache entry from persistence.
func RestoreLocation(address string, point *kernel.GeoPoint, resolved bool, updatedAt time.Time) (*Location, error) {
	l := &Location{
		resolved:      resolved,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := l.setAddress(address); err != nil {
		return nil, err
	}

	if resolved {
		if point == nil {
			return nil, errs.NewValueIsRequiredError("point")
		}
		if err := l.setPoint(*point); err != nil {
			return nil, err
		}
	} else if point != nil {
		return nil, errs.NewValueIsInvalidError("point must be absent for unresolvable location")
	}

	return l, nil
}

// Validate ensures the Location was created through a factory method.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}

	return nil
}

// Address returns the cache key.
func (l *Location) Address() string {
	return l.address
}

// Resolved reports whether the address was successfully geocoded.
// False means the address is permanently treated as unresolvable.
func (l *Location) Resolved() bool {
	return l.resolved
}

// Point returns the resolved coordinates, or nil for an unresolvable entry.
func (l *Location) Point() *kernel.GeoPoint {
	return l.point
}

// UpdatedAt returns the time the entry was created.
func (l *Location) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}

func (l *Location) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	l.point = &point
	return nil
}
