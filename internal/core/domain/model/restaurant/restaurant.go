package restaurant

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through the NewRestaurant or RestoreRestaurant factory methods.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrMenuItemAlreadyExists is returned when adding a menu item for a
	// product the restaurant already lists. The (restaurant, product) pair
	// is unique.
	ErrMenuItemAlreadyExists = errors.New("menu item for this product already exists")
)

// Restaurant is the aggregate root for a restaurant and its menu.
//
// Invariants:
//   - has a valid unique identifier, a non-empty name and a non-empty
//     postal address (the address is the geocoding key)
//   - lists at most one menu item per product
//   - can only be created through its factory methods
type Restaurant struct {
	id      kernel.UUID
	name    string
	address string
	menu    []MenuItem

	isConstructed bool
}

// NewRestaurant creates a Restaurant with an empty menu.
func NewRestaurant(id kernel.UUID, name string, address string) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant with its menu from persistence.
func RestoreRestaurant(id kernel.UUID, name string, address string, menu []MenuItem) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, address)
	if err != nil {
		return nil, err
	}

	for _, item := range menu {
		if err := r.addMenuItem(item); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Validate ensures the Restaurant was created through a factory method.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}

	return nil
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's postal address.
// The address doubles as the geocode cache key.
func (r *Restaurant) Address() string {
	return r.address
}

// Menu returns a copy of the restaurant's menu items.
func (r *Restaurant) Menu() []MenuItem {
	menu := make([]MenuItem, len(r.menu))
	copy(menu, r.menu)
	return menu
}

// AddMenuItem lists a product on the restaurant's menu.
// Each product may appear at most once; duplicates are rejected with
// ErrMenuItemAlreadyExists.
func (r *Restaurant) AddMenuItem(productID kernel.UUID, available bool) error {
	item, err := NewMenuItem(productID, available)
	if err != nil {
		return err
	}

	return r.addMenuItem(item)
}

func (r *Restaurant) addMenuItem(item MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range r.menu {
		if existing.ProductID().IsEqual(item.ProductID()) {
			return ErrMenuItemAlreadyExists
		}
	}

	r.menu = append(r.menu, item)
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}
