package service

import (
	"context"
)

// TransactionEvent is published after a checkout or completion commits.
type TransactionEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	Type          string  `json:"type"`
	TransactionID int64   `json:"transaction_id"`
	UserID        int64   `json:"user_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Status        string  `json:"status"`
	TotalPrice    int     `json:"total_price"`
	ProductIDs    []int64 `json:"product_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransactionEvent publishes a transaction lifecycle event
	PublishTransactionEvent(ctx context.Context, event *TransactionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
