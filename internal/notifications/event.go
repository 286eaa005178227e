package notifications

import (
	"bitebox/internal/core/domain/model/kernel"
)

// Kind identifies the lifecycle moment a notification describes.
type Kind int

const (
	KindUnknown Kind = iota
	KindOrderAccepted
	KindOrderPickedUp
	KindCourierArrived
	KindOrderDelivered
)

var kindTitles = map[Kind]string{
	KindOrderAccepted:  "Order accepted by courier",
	KindOrderPickedUp:  "Order picked up by courier",
	KindCourierArrived: "Courier arrived at destination",
	KindOrderDelivered: "Order delivered",
}

// Title returns the customer-facing notification title.
func (k Kind) Title() string {
	return kindTitles[k]
}

// Event is a customer notification emitted after an order transition commits.
// Delivery is best effort and at most once; a dropped event never affects the
// committed transition.
type Event struct {
	Kind           Kind
	OrderID        kernel.UUID
	CourierID      kernel.UUID
	RestaurantName string
	CustomerName   string
	Address        int
}
