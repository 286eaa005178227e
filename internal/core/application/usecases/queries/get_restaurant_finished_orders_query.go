package queries

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/pkg/guard"
)

var ErrGetRestaurantFinishedOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantFinishedOrdersQuery must be created via NewGetRestaurantFinishedOrdersQuery constructor",
)

// GetRestaurantFinishedOrdersQuery retrieves a restaurant's delivered orders
// within a reporting period. Only the owning admin may read the report.
type GetRestaurantFinishedOrdersQuery struct {
	actor          actor.Context
	restaurantName string
	period         Period

	guard guard.ConstructorGuard
}

// NewGetRestaurantFinishedOrdersQuery creates a report query for the named
// restaurant. The period must be one of the known reporting windows.
func NewGetRestaurantFinishedOrdersQuery(
	act actor.Context,
	restaurantName string,
	period Period,
) (GetRestaurantFinishedOrdersQuery, error) {
	if err := act.Validate(); err != nil {
		return GetRestaurantFinishedOrdersQuery{}, err
	}

	if restaurantName == "" {
		return GetRestaurantFinishedOrdersQuery{}, ErrRestaurantNameIsRequired
	}

	switch period {
	case PeriodToday, PeriodLastWeek, PeriodLastMonth:
	default:
		return GetRestaurantFinishedOrdersQuery{}, ErrInvalidPeriod
	}

	return GetRestaurantFinishedOrdersQuery{
		actor:          act,
		restaurantName: restaurantName,
		period:         period,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantFinishedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantFinishedOrdersQueryIsNotConstructed)
}

// Actor returns the acting admin's context.
func (q GetRestaurantFinishedOrdersQuery) Actor() actor.Context {
	return q.actor
}

// RestaurantName returns the restaurant whose report is read.
func (q GetRestaurantFinishedOrdersQuery) RestaurantName() string {
	return q.restaurantName
}

// Period returns the reporting window.
func (q GetRestaurantFinishedOrdersQuery) Period() Period {
	return q.period
}
