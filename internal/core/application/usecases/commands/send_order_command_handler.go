package commands

import (
	"context"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
)

// SendOrderCommandHandler handles order dispatch. Moves the order from
// "created" to "sent" and bumps the restaurant's popularity counter in the
// same transaction.
//
// The status write is conditional on the order still being in "created"
// status, so two concurrent sends commit exactly one transition and exactly
// one popularity increment.
type SendOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewSendOrderCommandHandler creates a handler for order dispatch operations.
func NewSendOrderCommandHandler(uowFactory UoWFactory) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the dispatch command.
func (h *SendOrderCommandHandler) Handle(ctx context.Context, cmd SendOrderCommand) (*order.Order, error) {
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

	if err = h.policy.CanSendOrder(cmd.Actor(), existing); err != nil {
		return nil, err
	}

	if err = existing.Send(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateWithStatus(ctx, existing, order.Created); err != nil {
		return nil, err
	}

	if err = uow.RestaurantRepository().IncrementPopularity(ctx, existing.RestaurantName()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
