package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles the business logic for restaurant
// registration.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration operations.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command. The restaurant and
// its menu are persisted in one transaction.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	for _, item := range cmd.Menu() {
		if err = aggregate.AddMenuItem(item.ProductID, item.Available); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
