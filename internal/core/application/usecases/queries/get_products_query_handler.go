package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/kernel"
)

// GetProductsQueryHandler searches the product catalog across restaurants.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog searches.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the catalog search, products sorted by restaurant then name.
// Products of tombstoned restaurants are excluded.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{
		"p.is_deleted = false",
		"r.is_deleted = false",
	}
	args := []any{}

	if query.RestaurantName() != "" {
		conditions = append(conditions, "p.restaurant_name = ?")
		args = append(args, query.RestaurantName())
	}

	if query.Category() != "" {
		conditions = append(conditions, "p.category ILIKE ?")
		args = append(args, query.Category())
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.description,
			p.price,
			p.category,
			p.restaurant_name
		FROM products p
		JOIN restaurants r ON r.name = p.restaurant_name
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY p.restaurant_name, p.name
	`, args...).Rows()
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
