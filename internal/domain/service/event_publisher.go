package service

import (
	"context"
)

// OrderCreatedEvent is published after an order is persisted, on both the
// demo intake path and the verified payment path. Downstream consumers
// (fulfilment mail, analytics) subscribe outside this service.
type OrderCreatedEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	Total         int64  `json:"total"`
	ItemCount     int    `json:"item_count"`
	PaymentMethod string `json:"payment_method"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
