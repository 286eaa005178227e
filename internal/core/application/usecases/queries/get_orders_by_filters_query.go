package queries

import (
	"errors"
	"time"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var (
	ErrGetOrdersByFiltersQueryIsNotConstructed = errors.New(
		"GetOrdersByFiltersQuery must be created via NewGetOrdersByFiltersQuery constructor",
	)
	ErrCreatedRangeIsInvalid = errors.New("createdBefore must be after createdAfter")
)

// OrderFilters is the optional criteria set for order searches. Nil and zero
// fields are ignored; the set criteria are combined with AND.
type OrderFilters struct {
	// CustomerID matches orders placed by the user exactly.
	CustomerID *kernel.UUID
	// CourierID matches orders assigned to the courier exactly.
	CourierID *kernel.UUID
	// RestaurantName matches as a case-insensitive substring.
	RestaurantName string
	// CreatedAfter is an inclusive lower bound on creation time.
	CreatedAfter *time.Time
	// CreatedBefore is an inclusive upper bound on creation time.
	CreatedBefore *time.Time
}

// GetOrdersByFiltersQuery searches orders by a combination of optional
// criteria. An empty filter set returns all non-deleted orders.
type GetOrdersByFiltersQuery struct {
	filters OrderFilters

	guard guard.ConstructorGuard
}

// NewGetOrdersByFiltersQuery creates a filtered order search query.
func NewGetOrdersByFiltersQuery(filters OrderFilters) (GetOrdersByFiltersQuery, error) {
	if filters.CustomerID != nil {
		if err := filters.CustomerID.Validate(); err != nil {
			return GetOrdersByFiltersQuery{}, err
		}
	}

	if filters.CourierID != nil {
		if err := filters.CourierID.Validate(); err != nil {
			return GetOrdersByFiltersQuery{}, err
		}
	}

	if filters.CreatedAfter != nil && filters.CreatedBefore != nil &&
		filters.CreatedBefore.Before(*filters.CreatedAfter) {
		return GetOrdersByFiltersQuery{}, ErrCreatedRangeIsInvalid
	}

	return GetOrdersByFiltersQuery{
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByFiltersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByFiltersQueryIsNotConstructed)
}

// Filters returns the search criteria.
func (q GetOrdersByFiltersQuery) Filters() OrderFilters {
	return q.filters
}
