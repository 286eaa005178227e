package commands

import (
	"context"

	"bitebox/internal/core/domain/model/product"
	"bitebox/internal/core/domain/services"
)

// CreateProductCommandHandler handles catalog product creation. An attached
// product is also added to its restaurant's menu list, atomically with the
// product write.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.RestaurantName() != "" {
		if err := h.policy.CanManageRestaurant(cmd.Actor(), cmd.RestaurantName()); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.RestaurantName(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if cmd.RestaurantName() != "" {
		restaurantRepo := uow.RestaurantRepository()
		owner, err := restaurantRepo.GetByName(ctx, cmd.RestaurantName())
		if err != nil {
			return nil, err
		}

		if err = owner.AddProduct(cmd.Name()); err != nil {
			return nil, err
		}

		if err = restaurantRepo.Update(ctx, owner); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
