package service

import (
	"context"
	"time"
)

// Document event types.
const (
	EventDocumentSaved   = "document.saved"
	EventDocumentDeleted = "document.deleted"
	EventOrderDeleted    = "order.deleted"
)

// DocumentEvent describes a committed change to a document.
type DocumentEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	Kind       string    `json:"kind"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	// PulledFrom lists the users whose order references were removed by the cascade.
	PulledFrom []string `json:"pulled_from,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDocumentEvent publishes an event after the change it describes was committed
	PublishDocumentEvent(ctx context.Context, event *DocumentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
