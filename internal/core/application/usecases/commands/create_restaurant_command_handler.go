package commands

import (
	"context"

	"bitebox/internal/core/domain/model/restaurant"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/pkg/errs"
)

// CreateRestaurantCommandHandler handles restaurant registration. Only admins
// may register restaurants; the acting admin's account is granted ownership
// of the new restaurant in the same transaction.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().Role() != user.RoleAdmin {
		return nil, errs.NewUnauthorizedError("create restaurant")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newRestaurant, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Address(),
		cmd.Categories(),
		cmd.Actor().ID(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return nil, err
	}

	userRepo := uow.UserRepository()
	admin, err := userRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	if err = admin.GrantRestaurant(cmd.Name()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRestaurant, nil
}
