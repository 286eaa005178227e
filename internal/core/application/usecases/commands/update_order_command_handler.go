package commands

import (
	"context"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles order amendment. Only the order's customer
// may amend, and only while the order is still in "created" status.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	pricing    services.PricingResolver
}

// NewUpdateOrderCommandHandler creates a handler for order amendment operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		pricing:    services.NewPricingResolver(),
	}
}

// Handle processes the amendment command. The replacement lines are re-priced
// against the target restaurant's current catalog, so an amended line always
// carries current prices even when its product was ordered before.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = h.policy.CanAmendOrder(cmd.Actor(), existing); err != nil {
		return nil, err
	}

	if _, err = uow.RestaurantRepository().GetByName(ctx, cmd.RestaurantName()); err != nil {
		return nil, err
	}

	catalog, err := uow.ProductRepository().GetActiveByRestaurant(ctx, cmd.RestaurantName())
	if err != nil {
		return nil, err
	}

	lineItems, err := h.pricing.Resolve(cmd.Items(), catalog)
	if err != nil {
		return nil, err
	}

	if err = existing.Amend(cmd.RestaurantName(), lineItems); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
