package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a customer's request to amend an order that
// has not been dispatched yet. The item list replaces the current lines
// wholesale and is re-priced against the target restaurant's catalog.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Context
	orderID        kernel.UUID
	restaurantName string
	items          []services.RequestedItem

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to amend an order still in "created"
// status.
func NewUpdateOrderCommand(
	act actor.Context,
	orderID kernel.UUID,
	restaurantName string,
	items []services.RequestedItem,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(act),
		orderCommand.setOrderID(orderID),
		orderCommand.setRestaurantName(restaurantName),
		orderCommand.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the acting customer's context.
func (c UpdateOrderCommand) Actor() actor.Context {
	return c.actor
}

// OrderID returns the identifier of the order to amend.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantName returns the restaurant the amended order targets.
func (c UpdateOrderCommand) RestaurantName() string {
	return c.restaurantName
}

// Items returns the replacement, unpriced order lines.
func (c UpdateOrderCommand) Items() []services.RequestedItem {
	return c.items
}

func (c *UpdateOrderCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = restaurantName
	return nil
}

func (c *UpdateOrderCommand) setItems(items []services.RequestedItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
