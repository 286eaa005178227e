package queries

import (
	"errors"

	"bitebox/internal/pkg/guard"
)

var ErrGetNotAcceptedOrdersQueryIsNotConstructed = errors.New(
	"GetNotAcceptedOrdersQuery must be created via NewGetNotAcceptedOrdersQuery constructor",
)

// OrderSort selects the ordering of the not-accepted order feed.
type OrderSort string

const (
	// SortCourierDistance orders by the distance between the browsing
	// courier's address and the restaurant's address, closest first.
	SortCourierDistance OrderSort = "courierDistance"
	// SortDeliveryDistance orders by the distance between the restaurant and
	// the ordering customer, shortest delivery first.
	SortDeliveryDistance OrderSort = "deliveryDistance"
	// SortOldestFirst orders by creation time ascending.
	SortOldestFirst OrderSort = "date"
)

// GetNotAcceptedOrdersQuery retrieves the dispatched orders no courier has
// claimed yet, the feed couriers browse to pick work. The courier's own
// address feeds the distance sort.
//
// An unrecognized sort value falls back to newest first rather than failing;
// the feed stays usable when a client sends a stale sort key.
type GetNotAcceptedOrdersQuery struct {
	sort           OrderSort
	courierAddress int

	guard guard.ConstructorGuard
}

// NewGetNotAcceptedOrdersQuery creates a feed query for a courier at the
// given address position.
func NewGetNotAcceptedOrdersQuery(sort OrderSort, courierAddress int) GetNotAcceptedOrdersQuery {
	return GetNotAcceptedOrdersQuery{
		sort:           sort,
		courierAddress: courierAddress,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetNotAcceptedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNotAcceptedOrdersQueryIsNotConstructed)
}

// Sort returns the requested ordering.
func (q GetNotAcceptedOrdersQuery) Sort() OrderSort {
	return q.sort
}

// CourierAddress returns the browsing courier's address position.
func (q GetNotAcceptedOrdersQuery) CourierAddress() int {
	return q.courierAddress
}
