package order

import (
	"errors"
	"fmt"

	"bitebox/internal/pkg/errs"
	"bitebox/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a priced snapshot of one ordered product. The line total is
// captured at resolution time from the catalog price and never re-priced when
// the catalog changes afterwards.
type LineItem struct {
	productName string
	quantity    int
	lineTotal   float64

	guard guard.ConstructorGuard
}

// NewLineItem creates a priced line item.
// Quantity must be positive and the line total non-negative.
func NewLineItem(productName string, quantity int, lineTotal float64) (LineItem, error) {
	if productName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productName")
	}

	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if lineTotal < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"lineTotal",
			fmt.Errorf("%f is negative", lineTotal),
		)
	}

	return LineItem{
		productName: productName,
		quantity:    quantity,
		lineTotal:   lineTotal,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductName returns the snapshotted product name.
func (li LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// LineTotal returns unit price at resolution time multiplied by quantity.
func (li LineItem) LineTotal() float64 {
	return li.lineTotal
}
