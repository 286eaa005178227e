// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored one row per order with the priced line
// items embedded as a JSONB document, since line items never exist outside
// their order.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the frequent lookups: by customer, by courier, by restaurant
// and by status for the courier feed.
type OrderDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID     `gorm:"type:uuid;index"`
	CourierID      *uuid.UUID    `gorm:"type:uuid;index"`
	RestaurantName string        `gorm:"index"`
	Status         int           `gorm:"index"`
	LineItems      LineItemsJSON `gorm:"type:jsonb"`
	Total          float64
	CreatedAt      time.Time
	IsDeleted      bool `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one priced order line inside the JSONB document.
type LineItemDTO struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// LineItemsJSON stores the order's line items as a JSONB column.
type LineItemsJSON []LineItemDTO

// Value implements driver.Valuer for writing the JSONB column.
func (l LineItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for reading the JSONB column.
func (l *LineItemsJSON) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	default:
		return fmt.Errorf("unsupported line items column type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	lineItems := make(LineItemsJSON, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		CourierID:      courierID,
		RestaurantName: aggregate.RestaurantName(),
		Status:         int(aggregate.Status()),
		LineItems:      lineItems,
		Total:          aggregate.Total(),
		CreatedAt:      aggregate.CreatedAt(),
		IsDeleted:      aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		lineItem, itemErr := order.NewLineItem(item.ProductName, item.Quantity, item.LineTotal)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(
		id,
		customerID,
		courierID,
		dto.RestaurantName,
		order.Status(dto.Status),
		lineItems,
		dto.CreatedAt,
		dto.IsDeleted,
	)
}
