package restaurant

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when attempting to use an
// improperly initialized MenuItem.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError(
	"menu item must be created via NewMenuItem constructor")

// MenuItem is a value object tying a product to the restaurant's menu with
// an availability flag. Only available items count toward fulfillment
// eligibility; unavailable ones are kept for catalog completeness.
type MenuItem struct {
	productID kernel.UUID
	available bool
	guard     guard.ConstructorGuard
}

// NewMenuItem creates a menu item for the given product.
func NewMenuItem(productID kernel.UUID, available bool) (MenuItem, error) {
	if err := productID.Validate(); err != nil {
		return MenuItem{}, err
	}

	return MenuItem{
		productID: productID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the MenuItem was created via NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ProductID returns the identifier of the listed product.
func (m MenuItem) ProductID() kernel.UUID {
	return m.productID
}

// Available reports whether the product is currently for sale.
func (m MenuItem) Available() bool {
	return m.available
}
