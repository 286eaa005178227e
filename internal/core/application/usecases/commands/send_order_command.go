package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrSendOrderCommandIsNotConstructed = errors.New(
	"SendOrderCommand must be created via NewSendOrderCommand constructor",
)

// SendOrderCommand represents a customer's request to dispatch a drafted
// order to its restaurant.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Context
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to dispatch the given order.
func NewSendOrderCommand(act actor.Context, orderID kernel.UUID) (SendOrderCommand, error) {
	orderCommand := SendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(act),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return SendOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// Actor returns the acting customer's context.
func (c SendOrderCommand) Actor() actor.Context {
	return c.actor
}

// OrderID returns the identifier of the order to dispatch.
func (c SendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *SendOrderCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *SendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
