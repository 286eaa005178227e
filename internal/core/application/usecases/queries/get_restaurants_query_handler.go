package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/kernel"
)

// GetRestaurantsQueryHandler searches the restaurant directory.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for directory searches.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the directory search, most popular restaurants first.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"is_deleted = false"}
	args := []any{}

	if query.Name() != "" {
		conditions = append(conditions, "name ILIKE ?")
		args = append(args, "%"+query.Name()+"%")
	}

	if query.Category() != "" {
		conditions = append(conditions, "? ILIKE ANY (categories)")
		args = append(args, query.Category())
	}

	restaurants := make([]RestaurantResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			categories,
			popularity
		FROM restaurants
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY popularity DESC, name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       RestaurantResponse
			id         uuid.UUID
			categories pq.StringArray
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Address, &categories, &resp.Popularity); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = restaurantID
		resp.Categories = categories

		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
