package ports

import (
	"context"
	"errors"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
)

// ErrOrderStateConflict is returned when a conditional update finds the order
// no longer in the status the caller observed. The operation lost the race and
// must be retried against fresh state or surfaced as a conflict.
var ErrOrderStateConflict = errors.New("order is no longer in the expected status")

// OrderRepository defines the persistence contract for order aggregates.
// Tombstoned orders are invisible to Get; lifecycle transitions go through
// UpdateWithStatus so concurrent actors cannot double-apply a transition.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order unconditionally.
	// Used for amendments and tombstoning, where the handler has already
	// validated the current state inside the transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWithStatus persists the aggregate only if the stored row is still
	// in expectedStatus. Returns ErrOrderStateConflict when another actor
	// transitioned the order first.
	UpdateWithStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves a non-deleted order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
