package queries

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/pkg/guard"
)

var (
	ErrGetRestaurantOngoingOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOngoingOrdersQuery must be created via NewGetRestaurantOngoingOrdersQuery constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// GetRestaurantOngoingOrdersQuery retrieves a restaurant's in-flight orders,
// everything dispatched but not yet finished. Only the owning admin may read
// the dashboard.
type GetRestaurantOngoingOrdersQuery struct {
	actor          actor.Context
	restaurantName string

	guard guard.ConstructorGuard
}

// NewGetRestaurantOngoingOrdersQuery creates a dashboard query for the named
// restaurant.
func NewGetRestaurantOngoingOrdersQuery(act actor.Context, restaurantName string) (GetRestaurantOngoingOrdersQuery, error) {
	if err := act.Validate(); err != nil {
		return GetRestaurantOngoingOrdersQuery{}, err
	}

	if restaurantName == "" {
		return GetRestaurantOngoingOrdersQuery{}, ErrRestaurantNameIsRequired
	}

	return GetRestaurantOngoingOrdersQuery{
		actor:          act,
		restaurantName: restaurantName,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOngoingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOngoingOrdersQueryIsNotConstructed)
}

// Actor returns the acting admin's context.
func (q GetRestaurantOngoingOrdersQuery) Actor() actor.Context {
	return q.actor
}

// RestaurantName returns the restaurant whose dashboard is read.
func (q GetRestaurantOngoingOrdersQuery) RestaurantName() string {
	return q.restaurantName
}
