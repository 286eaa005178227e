package commands

import (
	"context"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the requested items against the restaurant's current catalog and
// opens the order in "created" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(act, kernel.NewUUID(), "Pasta Place", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created holds the priced order, ready to be amended or sent
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingResolver
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingResolver(),
	}
}

// Handle processes the order creation command.
// Verifies the restaurant exists, snapshots catalog prices into line items and
// persists the order. Requested items unknown to the catalog are dropped; if
// nothing remains the command fails with services.ErrEmptyOrder.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.RestaurantRepository().GetByName(ctx, cmd.RestaurantName()); err != nil {
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

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), cmd.RestaurantName(), lineItems)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
