package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a courier's claim on a dispatched order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Context
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for the acting courier to accept
// the given order.
func NewAcceptOrderCommand(act actor.Context, orderID kernel.UUID) (AcceptOrderCommand, error) {
	orderCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(act),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// Actor returns the acting courier's context.
func (c AcceptOrderCommand) Actor() actor.Context {
	return c.actor
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AcceptOrderCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
