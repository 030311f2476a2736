package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignRestaurantCommandIsNotConstructed = errors.New(
	"AssignRestaurantCommand must be created via NewAssignRestaurantCommand constructor",
)

// AssignRestaurantCommand represents a request to hand an order to a
// restaurant for assembly. The choice of restaurant is the operator's;
// routing output only ranks the options.
type AssignRestaurantCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRestaurantCommand creates a command to assign a restaurant to an
// order.
func NewAssignRestaurantCommand(orderID, restaurantID kernel.UUID) (AssignRestaurantCommand, error) {
	assignCommand := AssignRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setRestaurantID(restaurantID),
	); err != nil {
		return AssignRestaurantCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAssignRestaurantCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignRestaurantCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the chosen restaurant.
func (c AssignRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *AssignRestaurantCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
