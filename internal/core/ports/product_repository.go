package ports

import (
	"context"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a non-deleted product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetActiveByRestaurant retrieves the non-deleted products attached to the
	// named restaurant. This is the catalog snapshot pricing resolves against.
	GetActiveByRestaurant(ctx context.Context, restaurantName string) ([]*product.Product, error)
}
