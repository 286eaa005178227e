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

func TestDeleteOrderCommandHandler_Handle_DraftOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	act := testActor(t, customerID, user.RoleClient)
	existing := testOrder(t, customerID)

	cmd, err := commands.NewDeleteOrderCommand(act, existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	// A draft order never counted towards popularity, so no decrement happens.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, existing.IsDeleted())
	uow.AssertNotCalled(t, "RestaurantRepository")
}

func TestDeleteOrderCommandHandler_Handle_DispatchedOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	act := testActor(t, customerID, user.RoleClient)
	existing := testOrder(t, customerID)
	require.NoError(t, existing.Send())

	cmd, err := commands.NewDeleteOrderCommand(act, existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("DecrementPopularity", ctx, testRestaurantName).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	restaurantRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_AdminMayDelete(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, kernel.NewUUID())
	admin := testActor(t, kernel.NewUUID(), user.RoleAdmin)

	cmd, err := commands.NewDeleteOrderCommand(admin, existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestDeleteOrderCommandHandler_Handle_StrangerMayNot(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, kernel.NewUUID())
	stranger := testActor(t, kernel.NewUUID(), user.RoleClient)

	cmd, err := commands.NewDeleteOrderCommand(stranger, existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, existing.IsDeleted())
}
