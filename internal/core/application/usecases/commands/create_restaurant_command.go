package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrCategoriesAreRequired = errors.New("at least one category is required")
)

// CreateRestaurantCommand represents an admin's request to register a new
// restaurant. The acting admin becomes the restaurant's owner.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Context
	restaurantID kernel.UUID
	name         string
	address      int
	categories   []string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	act actor.Context,
	restaurantID kernel.UUID,
	name string,
	address int,
	categories []string,
) (CreateRestaurantCommand, error) {
	restaurantCommand := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantCommand.setActor(act),
		restaurantCommand.setRestaurantID(restaurantID),
		restaurantCommand.setName(name),
		restaurantCommand.setCategories(categories),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	restaurantCommand.address = address
	return restaurantCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Actor returns the acting admin's context.
func (c CreateRestaurantCommand) Actor() actor.Context {
	return c.actor
}

// RestaurantID returns the identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the unique restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant's integer address position.
func (c CreateRestaurantCommand) Address() int {
	return c.address
}

// Categories returns the cuisine categories.
func (c CreateRestaurantCommand) Categories() []string {
	return c.categories
}

func (c *CreateRestaurantCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setCategories(categories []string) error {
	if len(categories) == 0 {
		return ErrCategoriesAreRequired
	}

	c.categories = categories
	return nil
}
