package commands

import (
	"context"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/notifications"
)

// AdvanceOrderCommandHandler handles generic stage progression. Who may act
// depends on the current stage: the restaurant admin hands an accepted order
// to the courier, the assigned courier drives the remaining legs.
//
// The status write is conditional on the stage the actor observed, so a
// transition is never applied twice.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
	policy     services.AccessPolicy
}

// NewAdvanceOrderCommandHandler creates a handler for stage progression operations.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the progression command and notifies the customer of the
// stage reached once the transaction has committed.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanAdvanceOrder(cmd.Actor(), existing); err != nil {
		return nil, err
	}

	observed := existing.Status()
	reached, err := existing.AdvanceToNext()
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateWithStatus(ctx, existing, observed); err != nil {
		return nil, err
	}

	customer, err := uow.UserRepository().Get(ctx, existing.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if kind := notificationKindFor(reached); kind != notifications.KindUnknown {
		event := notifications.Event{
			Kind:           kind,
			OrderID:        existing.ID(),
			RestaurantName: existing.RestaurantName(),
			CustomerName:   customer.Name(),
			Address:        customer.Address(),
		}
		if courierID := existing.Courier(); courierID != nil {
			event.CourierID = *courierID
		}
		h.notifier.Enqueue(event)
	}

	return existing, nil
}

func notificationKindFor(reached order.Status) notifications.Kind {
	switch reached {
	case order.Received:
		return notifications.KindOrderPickedUp
	case order.Arrived:
		return notifications.KindCourierArrived
	case order.Finished:
		return notifications.KindOrderDelivered
	default:
		return notifications.KindUnknown
	}
}
