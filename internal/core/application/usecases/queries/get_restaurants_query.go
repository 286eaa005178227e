package queries

import (
	"errors"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery searches the restaurant directory. Both filters are
// optional and combine with AND: the name matches as a case-insensitive
// substring, the category must be one of the restaurant's categories. With no
// filters the whole directory is returned. This is a public read.
type GetRestaurantsQuery struct {
	name     string
	category string

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a directory search query.
func NewGetRestaurantsQuery(name, category string) (GetRestaurantsQuery, error) {
	return GetRestaurantsQuery{
		name:     name,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// Name returns the name substring filter, empty when unset.
func (q GetRestaurantsQuery) Name() string {
	return q.name
}

// Category returns the category filter, empty when unset.
func (q GetRestaurantsQuery) Category() string {
	return q.category
}

// RestaurantResponse represents a restaurant as returned by directory reads.
type RestaurantResponse struct {
	ID         kernel.UUID
	Name       string
	Address    int
	Categories []string
	Popularity int
}
