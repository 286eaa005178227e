package notifications

import (
	"context"
	"log/slog"
)

// LogPublisher renders notifications to the structured log. Used when no
// broker is configured.
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher() LogPublisher {
	return LogPublisher{}
}

// Publish writes the notification to the log.
func (LogPublisher) Publish(_ context.Context, event Event) error {
	slog.Info(event.Kind.Title(),
		"orderId", event.OrderID.String(),
		"courierId", event.CourierID.String(),
		"restaurant", event.RestaurantName,
		"customer", event.CustomerName,
		"address", event.Address,
	)
	return nil
}
