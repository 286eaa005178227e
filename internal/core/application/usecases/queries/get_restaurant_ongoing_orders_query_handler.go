package queries

import (
	"context"

	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
)

// GetRestaurantOngoingOrdersQueryHandler retrieves a restaurant's in-flight
// orders: dispatched, not finished, not deleted.
type GetRestaurantOngoingOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetRestaurantOngoingOrdersQueryHandler creates a handler for the ongoing
// orders dashboard.
func NewGetRestaurantOngoingOrdersQueryHandler(db *gorm.DB) GetRestaurantOngoingOrdersQueryHandler {
	return GetRestaurantOngoingOrdersQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the dashboard query, oldest orders first so the kitchen
// works the queue in arrival order.
func (h GetRestaurantOngoingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOngoingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanViewRestaurantOrders(query.Actor(), query.RestaurantName()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_name = ?
		  AND status >= ? AND status < ?
		  AND is_deleted = false
		ORDER BY created_at
	`, query.RestaurantName(), order.Sent, order.Finished).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
