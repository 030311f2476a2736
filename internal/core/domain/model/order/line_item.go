package order

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an
// improperly initialized LineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is a value object referencing an ordered product and its
// quantity. Routing cares only about product identity; quantity is carried
// for the order record but ignored by eligibility resolution.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLineItem creates a line item. Quantity must be at least 1.
func NewLineItem(productID kernel.UUID, quantity int) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}

	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}
