package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/application/usecases/commands"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/ports"
	"bitebox/internal/notifications"
	"bitebox/internal/pkg/errs"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	courier := testActor(t, courierID, user.RoleCourier)

	existing := testOrder(t, customerID)
	require.NoError(t, existing.Send())

	cmd, err := commands.NewAcceptOrderCommand(courier, existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("UpdateWithStatus", ctx, existing, order.Sent).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, customerID).Return(testCustomer(t, customerID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(RecordingNotifier)
	handler := commands.NewAcceptOrderCommandHandler(factory, notifier)
	accepted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, accepted.Status())
	require.NotNil(t, accepted.Courier())
	assert.True(t, accepted.Courier().IsEqual(courierID))

	events := notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notifications.KindOrderAccepted, events[0].Kind)
	assert.True(t, events[0].CourierID.IsEqual(courierID))
	assert.Equal(t, "Alice", events[0].CustomerName)
	assert.Equal(t, 10, events[0].Address)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_NotCourier(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, kernel.NewUUID())
	require.NoError(t, existing.Send())
	client := testActor(t, kernel.NewUUID(), user.RoleClient)

	cmd, err := commands.NewAcceptOrderCommand(client, existing.ID())
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

	notifier := new(RecordingNotifier)
	handler := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Empty(t, notifier.Events())
}

func TestAcceptOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	courier := testActor(t, kernel.NewUUID(), user.RoleCourier)

	existing := testOrder(t, customerID)
	require.NoError(t, existing.Send())

	cmd, err := commands.NewAcceptOrderCommand(courier, existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("UpdateWithStatus", ctx, existing, order.Sent).
			Return(ports.ErrOrderStateConflict).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(RecordingNotifier)
	handler := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrOrderStateConflict)
	assert.Empty(t, notifier.Events())
}

func TestAcceptOrderCommandHandler_Handle_NotSentYet(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t, kernel.NewUUID())
	courier := testActor(t, kernel.NewUUID(), user.RoleCourier)

	cmd, err := commands.NewAcceptOrderCommand(courier, existing.ID())
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

	notifier := new(RecordingNotifier)
	handler := commands.NewAcceptOrderCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
