package queries

import (
	"errors"

	"bitebox/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery searches the product catalog across restaurants. Both
// filters are optional and combine with AND: the restaurant name matches
// exactly, the category case-insensitively. This is a public read, unlike the
// owner-only menu view.
type GetProductsQuery struct {
	restaurantName string
	category       string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog search query.
func NewGetProductsQuery(restaurantName, category string) (GetProductsQuery, error) {
	return GetProductsQuery{
		restaurantName: restaurantName,
		category:       category,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// RestaurantName returns the restaurant filter, empty when unset.
func (q GetProductsQuery) RestaurantName() string {
	return q.restaurantName
}

// Category returns the category filter, empty when unset.
func (q GetProductsQuery) Category() string {
	return q.category
}
