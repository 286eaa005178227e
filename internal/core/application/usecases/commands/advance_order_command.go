package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to push an order to its next
// lifecycle stage: accepted to received, received to arrived, arrived to
// finished. Dispatch and acceptance have dedicated commands.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Context
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance the given order one stage.
func NewAdvanceOrderCommand(act actor.Context, orderID kernel.UUID) (AdvanceOrderCommand, error) {
	orderCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(act),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// Actor returns the acting user's context.
func (c AdvanceOrderCommand) Actor() actor.Context {
	return c.actor
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AdvanceOrderCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
