package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	menu := []commands.CreateMenuItem{
		{ProductID: kernel.NewUUID(), Available: true},
		{ProductID: kernel.NewUUID(), Available: false},
	}
	cmd, _ := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "Pepper Grill", "Moscow, Tverskaya 7", menu)

	repo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
			return len(r.Menu()) == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRestaurantCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRestaurantCommand{} // not constructed properly
	factory := new(MockRestaurantUoWFactory)
	h := commands.NewCreateRestaurantCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateRestaurantCommandIsNotConstructed)
}

func TestCreateRestaurantCommandHandler_Handle_DuplicateMenuProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	menu := []commands.CreateMenuItem{
		{ProductID: productID, Available: true},
		{ProductID: productID, Available: false},
	}
	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "Pepper Grill", "Moscow, Tverskaya 7", menu)
	require.NoError(t, err)

	factory := new(MockRestaurantUoWFactory)

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, restaurant.ErrMenuItemAlreadyExists)
}

func TestCreateRestaurantCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "Pepper Grill", "Moscow, Tverskaya 7", nil)

	repo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*restaurant.Restaurant")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
