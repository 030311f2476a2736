package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderItemsAreRequired     = errors.New("order must contain at least one item")
)

// CreateOrderItem is one position of a new order: a product and how many
// units of it the customer wants.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to register a new order with its
// delivery address and item list. The address is kept as a raw string;
// geocoding happens later during routing.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	deliveryAddress string
	items           []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the address is not empty, and every
// item references a valid product with a positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	deliveryAddress string,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryAddress returns the raw delivery address string.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the validated order line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	c.items = lineItems
	return nil
}
