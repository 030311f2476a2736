package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired    = errors.New("restaurant name is required")
	ErrRestaurantAddressIsRequired = errors.New("restaurant address is required")
)

// CreateMenuItem is one menu position of a new restaurant.
type CreateMenuItem struct {
	ProductID kernel.UUID
	Available bool
}

// CreateRestaurantCommand represents a request to register a restaurant
// with its address and initial menu. The menu may be empty; such a
// restaurant is never eligible for any order until items are added.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	address      string
	menu         []CreateMenuItem

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a new restaurant.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	address string,
	menu []CreateMenuItem,
) (CreateRestaurantCommand, error) {
	restaurantCommand := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantCommand.setRestaurantID(restaurantID),
		restaurantCommand.setName(name),
		restaurantCommand.setAddress(address),
		restaurantCommand.setMenu(menu),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return restaurantCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant address string.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Menu returns the initial menu positions.
func (c CreateRestaurantCommand) Menu() []CreateMenuItem {
	return c.menu
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return ErrRestaurantAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateRestaurantCommand) setMenu(menu []CreateMenuItem) error {
	var joined error
	for _, item := range menu {
		joined = errors.Join(joined, item.ProductID.Validate())
	}
	if joined != nil {
		return joined
	}

	c.menu = menu
	return nil
}
