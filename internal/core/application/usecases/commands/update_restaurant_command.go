package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/pkg/guard"
)

var (
	ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
		"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
	)
	ErrNothingToUpdate = errors.New("no fields to update")
)

// UpdateRestaurantCommand represents an owner's request to change a
// restaurant's address or categories. Nil fields are left unchanged. The name
// is the natural key referenced by orders and products and cannot change.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Context
	restaurantName string
	address        *int
	categories     []string

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantCommand creates a command to update the named restaurant.
// At least one field must be set.
func NewUpdateRestaurantCommand(
	act actor.Context,
	restaurantName string,
	address *int,
	categories []string,
) (UpdateRestaurantCommand, error) {
	restaurantCommand := UpdateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantCommand.setActor(act),
		restaurantCommand.setRestaurantName(restaurantName),
	); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	if address == nil && categories == nil {
		return UpdateRestaurantCommand{}, ErrNothingToUpdate
	}

	restaurantCommand.address = address
	restaurantCommand.categories = categories
	return restaurantCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

// Actor returns the acting admin's context.
func (c UpdateRestaurantCommand) Actor() actor.Context {
	return c.actor
}

// RestaurantName returns the name of the restaurant to update.
func (c UpdateRestaurantCommand) RestaurantName() string {
	return c.restaurantName
}

// Address returns the new address, or nil when unchanged.
func (c UpdateRestaurantCommand) Address() *int {
	return c.address
}

// Categories returns the replacement categories, or nil when unchanged.
func (c UpdateRestaurantCommand) Categories() []string {
	return c.categories
}

func (c *UpdateRestaurantCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *UpdateRestaurantCommand) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = restaurantName
	return nil
}
