package commands

import (
	"context"

	"bitebox/internal/core/domain/services"
)

// DeleteProductCommandHandler handles product tombstoning. The product drops
// out of pricing lookups and its name leaves the owning restaurant's menu
// list; existing order line items keep their snapshot.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the product deletion command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if existing.RestaurantName() != "" {
		if err = h.policy.CanManageRestaurant(cmd.Actor(), existing.RestaurantName()); err != nil {
			return err
		}
	}

	if err = existing.MarkDeleted(); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return err
	}

	if existing.RestaurantName() != "" {
		restaurantRepo := uow.RestaurantRepository()
		owner, err := restaurantRepo.GetByName(ctx, existing.RestaurantName())
		if err != nil {
			return err
		}

		if err = owner.RemoveProduct(existing.Name()); err != nil {
			return err
		}

		if err = restaurantRepo.Update(ctx, owner); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
