// Package notifications carries customer-facing order updates from committed
// lifecycle transitions to a delivery channel, asynchronously and at most
// once.
package notifications
