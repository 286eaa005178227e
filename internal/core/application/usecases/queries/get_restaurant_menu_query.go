package queries

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves a restaurant's active products. Only the
// owning admin may read the management view.
type GetRestaurantMenuQuery struct {
	actor          actor.Context
	restaurantName string

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a menu query for the named restaurant.
func NewGetRestaurantMenuQuery(act actor.Context, restaurantName string) (GetRestaurantMenuQuery, error) {
	if err := act.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	if restaurantName == "" {
		return GetRestaurantMenuQuery{}, ErrRestaurantNameIsRequired
	}

	return GetRestaurantMenuQuery{
		actor:          act,
		restaurantName: restaurantName,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// Actor returns the acting admin's context.
func (q GetRestaurantMenuQuery) Actor() actor.Context {
	return q.actor
}

// RestaurantName returns the restaurant whose menu is read.
func (q GetRestaurantMenuQuery) RestaurantName() string {
	return q.restaurantName
}

// ProductResponse represents a catalog product as returned by read operations.
type ProductResponse struct {
	ID             kernel.UUID
	Name           string
	Description    string
	Price          float64
	Category       string
	RestaurantName string
}
