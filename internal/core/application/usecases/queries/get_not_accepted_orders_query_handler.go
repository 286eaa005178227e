package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/order"
)

// GetNotAcceptedOrdersQueryHandler retrieves the courier work feed: orders in
// "sent" status awaiting acceptance. Distance sorts join the restaurant and
// customer tables; addresses are integer positions, so distance is a plain
// absolute difference.
type GetNotAcceptedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetNotAcceptedOrdersQueryHandler creates a handler for the courier feed.
func NewGetNotAcceptedOrdersQueryHandler(db *gorm.DB) GetNotAcceptedOrdersQueryHandler {
	return GetNotAcceptedOrdersQueryHandler{db: db}
}

// Handle executes the feed query with the requested ordering.
func (h GetNotAcceptedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNotAcceptedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)

	switch query.Sort() {
	case SortCourierDistance:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+prefixedOrderColumns("o")+`
			FROM orders o
			JOIN restaurants r ON r.name = o.restaurant_name
			WHERE o.status = ? AND o.is_deleted = false
			ORDER BY ABS(r.address - ?), o.created_at DESC
		`, order.Sent, query.CourierAddress()).Rows()
	case SortDeliveryDistance:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+prefixedOrderColumns("o")+`
			FROM orders o
			JOIN restaurants r ON r.name = o.restaurant_name
			JOIN users u ON u.id = o.customer_id
			WHERE o.status = ? AND o.is_deleted = false
			ORDER BY ABS(u.address - r.address), o.created_at DESC
		`, order.Sent).Rows()
	case SortOldestFirst:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+orderColumns+`
			FROM orders
			WHERE status = ? AND is_deleted = false
			ORDER BY created_at
		`, order.Sent).Rows()
	default:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+orderColumns+`
			FROM orders
			WHERE status = ? AND is_deleted = false
			ORDER BY created_at DESC
		`, order.Sent).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
