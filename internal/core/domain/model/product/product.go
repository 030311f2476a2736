// Package product contains the product aggregate: a sellable catalog item
// referenced by restaurant menus and order line items.
package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog item. Identity is stable within a routing
// run: eligibility resolution compares products strictly by identifier.
type Product struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewProduct creates a new Product with a valid identifier and a non-empty
// name.
func NewProduct(id kernel.UUID, name string) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Applies the same validation rules as NewProduct.
func RestoreProduct(id kernel.UUID, name string) (*Product, error) {
	return NewProduct(id, name)
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
