package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed customer order. It is the aggregate root that
// manages the fulfillment lifecycle from creation through assembling and
// delivery to completion.
//
// Order follows these invariants:
//   - has a valid unique identifier and a non-empty delivery address
//   - has at least one line item
//   - status transitions follow the Created -> Assembling -> Delivering -> Done
//     state machine
//   - a restaurant is assigned exactly when the status requires one
type Order struct {
	id kernel.UUID

	// deliveryAddress is the customer's address; it is the geocoding key
	// used when ranking candidate restaurants.
	deliveryAddress string

	// restaurantID is the assigned cooking restaurant (nil until assigned).
	restaurantID *kernel.UUID

	status Status

	items []LineItem

	isConstructed bool
}

// NewOrder creates a new Order in Created status with no restaurant
// assigned.
//
// Parameters:
//   - id: unique order identifier
//   - deliveryAddress: non-empty postal address for geocoding
//   - items: at least one line item
func NewOrder(id kernel.UUID, deliveryAddress string, items []LineItem) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// status and optional assigned restaurant. Validates the same invariants as
// NewOrder plus status/restaurant consistency.
func RestoreOrder(
	id kernel.UUID,
	deliveryAddress string,
	status Status,
	restaurantID *kernel.UUID,
	items []LineItem,
) (*Order, error) {
	o, err := NewOrder(id, deliveryAddress, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.ValidateCanHaveRestaurant(restaurantID != nil); err != nil {
		return nil, err
	}

	if restaurantID != nil {
		if err = restaurantID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.restaurantID = restaurantID
	return o, nil
}

// Validate ensures the Order instance was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DeliveryAddress returns the customer's delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Restaurant returns the assigned restaurant's ID, or nil if unassigned.
func (o *Order) Restaurant() *kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// ProductIDs returns the distinct product identifiers across the order's
// line items. This is the product set used for eligibility resolution;
// quantities are irrelevant there.
func (o *Order) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.ProductID()]; ok {
			continue
		}
		seen[item.ProductID()] = struct{}{}
		ids = append(ids, item.ProductID())
	}
	return ids
}

// AssignRestaurant assigns a cooking restaurant and moves the order to
// Assembling. Only Created orders can be assigned.
func (o *Order) AssignRestaurant(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartAssembling()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.restaurantID = &restaurantID
	return nil
}

// StartDelivery marks the order as handed over for delivery.
// Only Assembling orders can start delivery.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivering()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered. Only Delivering orders can be
// completed; Done is final.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
