package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/application/usecases/commands"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/pkg/errs"
)

func TestDeleteRestaurantCommandHandler_Handle_OwningAdminDeletes(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, kernel.NewUUID(), user.RoleAdmin, testRestaurantName)
	existing := testRestaurant(t)

	cmd, err := commands.NewDeleteRestaurantCommand(admin, testRestaurantName)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetByName", ctx, testRestaurantName).Return(existing, nil).Once(),
		restaurantRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteRestaurantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, existing.IsDeleted())
}

func TestDeleteRestaurantCommandHandler_Handle_NonOwnerMayNot(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, kernel.NewUUID(), user.RoleAdmin, "Someone Else's Diner")

	cmd, err := commands.NewDeleteRestaurantCommand(admin, testRestaurantName)
	require.NoError(t, err)

	factory := new(MockRestaurantUoWFactory)

	handler := commands.NewDeleteRestaurantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}
