package ports

import (
	"context"

	"bitebox/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, keyed by the unique restaurant name.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// GetByName retrieves a non-deleted restaurant by its unique name.
	GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error)

	// IncrementPopularity atomically bumps the popularity counter in storage.
	// Applied as a single relative update so concurrent sends do not lose
	// increments.
	IncrementPopularity(ctx context.Context, name string) error

	// DecrementPopularity atomically lowers the popularity counter, flooring
	// at zero. Decrementing a zero counter is a no-op, not an error.
	DecrementPopularity(ctx context.Context, name string) error

	// ReconcilePopularity recomputes every restaurant's popularity from the
	// dispatched-order count. Run by the background reconciliation job to
	// repair drift.
	ReconcilePopularity(ctx context.Context) error
}
