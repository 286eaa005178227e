package services

import (
	"errors"

	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/product"
)

// ErrEmptyOrder is returned when pricing drops every requested line, leaving
// nothing to order.
var ErrEmptyOrder = errors.New("no requested product is available")

// RequestedItem is an unpriced order line as submitted by the customer.
type RequestedItem struct {
	ProductName string
	Quantity    int
}

// PricingResolver is a domain service that turns requested product names into
// priced line items using the current catalog. A line's total is captured at
// resolution time; later catalog price changes never re-price it.
//
// Requested products that are unknown to the catalog or tombstoned are dropped
// silently, matching a cart where stale entries simply fall out. If every line
// drops, resolution fails with ErrEmptyOrder.
type PricingResolver struct{}

// NewPricingResolver creates a PricingResolver instance.
func NewPricingResolver() PricingResolver {
	return PricingResolver{}
}

// Resolve prices the requested items against the catalog snapshot.
func (r PricingResolver) Resolve(requested []RequestedItem, catalog []*product.Product) ([]order.LineItem, error) {
	priceByName := make(map[string]float64, len(catalog))
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if p.IsDeleted() {
			continue
		}
		priceByName[p.Name()] = p.Price()
	}

	lineItems := make([]order.LineItem, 0, len(requested))
	for _, item := range requested {
		price, ok := priceByName[item.ProductName]
		if !ok {
			continue
		}

		lineItem, err := order.NewLineItem(item.ProductName, item.Quantity, price*float64(item.Quantity))
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	if len(lineItems) == 0 {
		return nil, ErrEmptyOrder
	}

	return lineItems, nil
}
