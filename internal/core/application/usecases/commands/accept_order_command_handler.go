package commands

import (
	"context"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/notifications"
)

// AcceptOrderCommandHandler handles courier acceptance of dispatched orders.
// The status write is conditional on the order still being in "sent" status,
// so when two couriers race for the same order exactly one wins and the other
// gets ports.ErrOrderStateConflict.
//
// On success the customer is notified asynchronously, after the transaction
// has committed.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
	policy     services.AccessPolicy
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	if err = h.policy.CanAcceptOrder(cmd.Actor(), existing); err != nil {
		return nil, err
	}

	if err = existing.Accept(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateWithStatus(ctx, existing, order.Sent); err != nil {
		return nil, err
	}

	customer, err := uow.UserRepository().Get(ctx, existing.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Enqueue(notifications.Event{
		Kind:           notifications.KindOrderAccepted,
		OrderID:        existing.ID(),
		CourierID:      cmd.Actor().ID(),
		RestaurantName: existing.RestaurantName(),
		CustomerName:   customer.Name(),
		Address:        customer.Address(),
	})

	return existing, nil
}
