package commands

import (
	"context"

	"bitebox/internal/core/domain/services"
)

// DeleteRestaurantCommandHandler handles restaurant tombstoning by the owning
// admin. Products of a tombstoned restaurant are left in place; they become
// unreachable because menu reads and order creation resolve the restaurant
// first.
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant deletion.
func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the deletion command. The restaurant row is kept as a
// tombstone and disappears from reads.
func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageRestaurant(cmd.Actor(), cmd.RestaurantName()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	existing, err := restaurantRepo.GetByName(ctx, cmd.RestaurantName())
	if err != nil {
		return err
	}

	if err = existing.MarkDeleted(); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
