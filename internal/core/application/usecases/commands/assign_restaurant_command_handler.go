package commands

import (
	"context"
)

// AssignRestaurantCommandHandler moves an order from Created to Assembling
// by attaching a restaurant to it. Both aggregates are loaded inside one
// transaction so the restaurant is guaranteed to exist at assignment time.
type AssignRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRestaurantCommandHandler creates a handler for restaurant
// assignment operations.
func NewAssignRestaurantCommandHandler(uowFactory UoWFactory) AssignRestaurantCommandHandler {
	return AssignRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Fails if the order or the
// restaurant does not exist, or if the order already left the Created
// status.
func (h *AssignRestaurantCommandHandler) Handle(ctx context.Context, cmd AssignRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	chosen, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignRestaurant(chosen.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
