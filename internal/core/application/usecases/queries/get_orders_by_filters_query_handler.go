package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersByFiltersQueryHandler searches orders by the optional criteria
// carried in the query. The WHERE clause is assembled only from the criteria
// that are actually set, always parameterized.
type GetOrdersByFiltersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByFiltersQueryHandler creates a handler for filtered order searches.
func NewGetOrdersByFiltersQueryHandler(db *gorm.DB) GetOrdersByFiltersQueryHandler {
	return GetOrdersByFiltersQueryHandler{db: db}
}

// Handle executes the search. Results are sorted newest first.
func (h GetOrdersByFiltersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByFiltersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"is_deleted = false"}
	args := make([]any, 0, 5)
	filters := query.Filters()

	if filters.CustomerID != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, filters.CustomerID.Bytes())
	}

	if filters.CourierID != nil {
		conditions = append(conditions, "courier_id = ?")
		args = append(args, filters.CourierID.Bytes())
	}

	if filters.RestaurantName != "" {
		conditions = append(conditions, "restaurant_name ILIKE ?")
		args = append(args, "%"+filters.RestaurantName+"%")
	}

	if filters.CreatedAfter != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filters.CreatedAfter)
	}

	if filters.CreatedBefore != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *filters.CreatedBefore)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+strings.Join(conditions, " AND ")+`
		ORDER BY created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
