package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/services"
)

// GetRestaurantMenuQueryHandler retrieves a restaurant's active products for
// the owner's management view.
type GetRestaurantMenuQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the menu query, products sorted by name.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanViewRestaurantOrders(query.Actor(), query.RestaurantName()); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			restaurant_name
		FROM products
		WHERE restaurant_name = ? AND is_deleted = false
		ORDER BY name
	`, query.RestaurantName()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp ProductResponse
			id   uuid.UUID
		)

		if err = rows.Scan(
			&id, &resp.Name, &resp.Description, &resp.Price, &resp.Category, &resp.RestaurantName,
		); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
