package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
	ErrOrderItemsAreRequired    = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a customer's request to open a new order.
// Carries the unpriced item list; prices are resolved against the restaurant's
// catalog when the command is handled.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(act, orderID, "Pasta Place", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Context
	orderID        kernel.UUID
	restaurantName string
	items          []services.RequestedItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order for the acting
// customer. Validates that the order ID is valid, the restaurant name is not
// empty and at least one item is requested.
func NewCreateOrderCommand(
	act actor.Context,
	orderID kernel.UUID,
	restaurantName string,
	items []services.RequestedItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(act),
		orderCommand.setOrderID(orderID),
		orderCommand.setRestaurantName(restaurantName),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the acting customer's context.
func (c CreateOrderCommand) Actor() actor.Context {
	return c.actor
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantName returns the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantName() string {
	return c.restaurantName
}

// Items returns the requested, unpriced order lines.
func (c CreateOrderCommand) Items() []services.RequestedItem {
	return c.items
}

func (c *CreateOrderCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = restaurantName
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.RequestedItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
