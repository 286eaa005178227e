package commands

import (
	"context"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
)

// DeleteOrderCommandHandler handles order tombstoning. The order's customer
// or a platform admin may delete; deleting a dispatched order reverses the
// restaurant's popularity increment in the same transaction.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the deletion command. The order row is kept as a tombstone
// and disappears from reads; deletion is idempotent at the API level because
// a tombstoned order is no longer found.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDeleteOrder(cmd.Actor(), existing); err != nil {
		return err
	}

	dispatched := existing.Status().Reached(order.Sent)

	if err = existing.MarkDeleted(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if dispatched {
		if err = uow.RestaurantRepository().DecrementPopularity(ctx, existing.RestaurantName()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
