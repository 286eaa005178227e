package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/application/usecases/commands"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/pkg/errs"
)

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	act := testActor(t, customerID, user.RoleClient)
	existing := testOrder(t, customerID)

	cmd, err := commands.NewUpdateOrderCommand(act, existing.ID(), testRestaurantName,
		[]services.RequestedItem{{ProductName: "eraser", Quantity: 3}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetByName", ctx, testRestaurantName).Return(testRestaurant(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetActiveByRestaurant", ctx, testRestaurantName).Return(testCatalog(t), nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	amended, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, amended.LineItems(), 1)
	assert.Equal(t, "eraser", amended.LineItems()[0].ProductName())
	assert.InDelta(t, 3, amended.Total(), 0.0001)
}

func TestUpdateOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, kernel.NewUUID())
	stranger := testActor(t, kernel.NewUUID(), user.RoleClient)

	cmd, err := commands.NewUpdateOrderCommand(stranger, existing.ID(), testRestaurantName, testRequestedItems())
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

	handler := commands.NewUpdateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestUpdateOrderCommandHandler_Handle_DispatchedOrderIsImmutable(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	act := testActor(t, customerID, user.RoleClient)
	existing := testOrder(t, customerID)
	require.NoError(t, existing.Send())

	cmd, err := commands.NewUpdateOrderCommand(act, existing.ID(), testRestaurantName, testRequestedItems())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetByName", ctx, testRestaurantName).Return(testRestaurant(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetActiveByRestaurant", ctx, testRestaurantName).Return(testCatalog(t), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
