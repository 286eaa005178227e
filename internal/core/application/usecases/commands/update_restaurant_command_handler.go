package commands

import (
	"context"

	"bitebox/internal/core/domain/model/restaurant"
	"bitebox/internal/core/domain/services"
)

// UpdateRestaurantCommandHandler handles restaurant field updates by the
// owning admin.
type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateRestaurantCommandHandler creates a handler for restaurant updates.
func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the update command.
func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageRestaurant(cmd.Actor(), cmd.RestaurantName()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	existing, err := restaurantRepo.GetByName(ctx, cmd.RestaurantName())
	if err != nil {
		return nil, err
	}

	if address := cmd.Address(); address != nil {
		if err = existing.ChangeAddress(*address); err != nil {
			return nil, err
		}
	}

	if categories := cmd.Categories(); categories != nil {
		if err = existing.ChangeCategories(categories); err != nil {
			return nil, err
		}
	}

	if err = restaurantRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
