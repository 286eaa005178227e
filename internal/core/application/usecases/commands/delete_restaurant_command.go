package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand represents a request to tombstone a restaurant.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Context
	restaurantName string

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to tombstone the named restaurant.
func NewDeleteRestaurantCommand(act actor.Context, restaurantName string) (DeleteRestaurantCommand, error) {
	restaurantCommand := DeleteRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantCommand.setActor(act),
		restaurantCommand.setRestaurantName(restaurantName),
	); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return restaurantCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// Actor returns the acting user's context.
func (c DeleteRestaurantCommand) Actor() actor.Context {
	return c.actor
}

// RestaurantName returns the name of the restaurant to tombstone.
func (c DeleteRestaurantCommand) RestaurantName() string {
	return c.restaurantName
}

func (c *DeleteRestaurantCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *DeleteRestaurantCommand) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = restaurantName
	return nil
}
