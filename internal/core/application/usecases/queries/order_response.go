// Package queries contains read-only operations for retrieving system state.
// Implements the query side of the CQRS architecture: handlers read the
// storage directly with raw SQL and return plain response structs, bypassing
// the aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
)

// OrderItemResponse is one priced line of an order.
type OrderItemResponse struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// OrderResponse represents an order as returned by read operations.
type OrderResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	CourierID      *kernel.UUID
	RestaurantName string
	Status         string
	Items          []OrderItemResponse
	Total          float64
	CreatedAt      time.Time
}

// orderColumns is the column list every order query selects, in scan order.
const orderColumns = `
	id,
	customer_id,
	courier_id,
	restaurant_name,
	status,
	line_items,
	total,
	created_at
`

// prefixedOrderColumns qualifies the order column list with a table alias for
// queries that join other tables.
func prefixedOrderColumns(alias string) string {
	cols := strings.Split(orderColumns, ",")
	for i, col := range cols {
		cols[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(cols, ", ")
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp      OrderResponse
		id        uuid.UUID
		courierID uuid.NullUUID
		customer  uuid.UUID
		status    int
		lineItems []byte
	)

	if err := rows.Scan(
		&id,
		&customer,
		&courierID,
		&resp.RestaurantName,
		&status,
		&lineItems,
		&resp.Total,
		&resp.CreatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	customerID, err := kernel.UUIDFromBytes(customer[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = customerID

	if courierID.Valid {
		courier, err := kernel.UUIDFromBytes(courierID.UUID[:])
		if err != nil {
			return OrderResponse{}, err
		}
		resp.CourierID = &courier
	}

	resp.Status = order.Status(status).String()

	if len(lineItems) > 0 {
		if err = json.Unmarshal(lineItems, &resp.Items); err != nil {
			return OrderResponse{}, err
		}
	}

	return resp, nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
