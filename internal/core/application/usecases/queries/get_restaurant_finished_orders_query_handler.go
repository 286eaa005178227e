package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/services"
)

// GetRestaurantFinishedOrdersQueryHandler retrieves a restaurant's delivered
// orders within a rolling reporting window.
//
// The window is evaluated against the order's creation time: the original
// model keeps no per-transition timestamps, so creation time is the only
// stable anchor an order carries.
type GetRestaurantFinishedOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
	now    func() time.Time
}

// NewGetRestaurantFinishedOrdersQueryHandler creates a handler for the
// finished orders report.
func NewGetRestaurantFinishedOrdersQueryHandler(db *gorm.DB) GetRestaurantFinishedOrdersQueryHandler {
	return GetRestaurantFinishedOrdersQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
		now:    time.Now,
	}
}

// Handle executes the report query, newest first.
func (h GetRestaurantFinishedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantFinishedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanViewRestaurantOrders(query.Actor(), query.RestaurantName()); err != nil {
		return nil, err
	}

	cutoff, err := query.Period().Cutoff(h.now().UTC())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_name = ?
		  AND status = ?
		  AND created_at >= ?
		  AND is_deleted = false
		ORDER BY created_at DESC
	`, query.RestaurantName(), order.Finished, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
