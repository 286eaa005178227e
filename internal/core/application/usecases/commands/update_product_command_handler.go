package commands

import (
	"context"

	"bitebox/internal/core/domain/model/product"
	"bitebox/internal/core/domain/services"
)

// UpdateProductCommandHandler handles catalog product updates. A rename is
// propagated to the owning restaurant's menu list in the same transaction so
// the denormalized list never references a stale name.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if existing.RestaurantName() != "" {
		if err = h.policy.CanManageRestaurant(cmd.Actor(), existing.RestaurantName()); err != nil {
			return nil, err
		}
	}

	oldName := existing.Name()

	if name := cmd.Name(); name != nil {
		if err = existing.Rename(*name); err != nil {
			return nil, err
		}
	}

	if description := cmd.Description(); description != nil {
		if err = existing.ChangeDescription(*description); err != nil {
			return nil, err
		}
	}

	if price := cmd.Price(); price != nil {
		if err = existing.Reprice(*price); err != nil {
			return nil, err
		}
	}

	if category := cmd.Category(); category != nil {
		if err = existing.ChangeCategory(*category); err != nil {
			return nil, err
		}
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if existing.RestaurantName() != "" && existing.Name() != oldName {
		restaurantRepo := uow.RestaurantRepository()
		owner, err := restaurantRepo.GetByName(ctx, existing.RestaurantName())
		if err != nil {
			return nil, err
		}

		if err = owner.RenameProduct(oldName, existing.Name()); err != nil {
			return nil, err
		}

		if err = restaurantRepo.Update(ctx, owner); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
