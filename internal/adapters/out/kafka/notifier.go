// Package kafka publishes customer notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"bitebox/internal/notifications"
)

// notificationMessage is the wire format for notification events. Keyed by
// order ID so all notifications for one order land in the same partition.
type notificationMessage struct {
	Title          string `json:"title"`
	OrderID        string `json:"orderId"`
	CourierID      string `json:"courierId"`
	RestaurantName string `json:"restaurantName"`
	CustomerName   string `json:"customerName"`
	Address        int    `json:"address"`
}

// NotificationPublisher implements notifications.Publisher on top of a Kafka
// writer.
type NotificationPublisher struct {
	writer *kafka.Writer
}

// NewNotificationPublisher creates a publisher writing to the given topic.
func NewNotificationPublisher(host, topic string) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(host),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

// Publish writes a single notification event to the topic.
func (p *NotificationPublisher) Publish(ctx context.Context, event notifications.Event) error {
	payload, err := json.Marshal(notificationMessage{
		Title:          event.Kind.Title(),
		OrderID:        event.OrderID.String(),
		CourierID:      event.CourierID.String(),
		RestaurantName: event.RestaurantName,
		CustomerName:   event.CustomerName,
		Address:        event.Address,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
}

// Close releases the underlying writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
