// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

func newDocumentEvent(eventType string, kind entity.Kind, key string) *service.DocumentEvent {
	return &service.DocumentEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Kind:       kind.String(),
		Key:        key,
		OccurredAt: time.Now().UTC(),
	}
}

// publishCommitted publishes an event for a change that is already committed.
// A failure is logged and otherwise ignored; the write stands.
func publishCommitted(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DocumentEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishDocumentEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish document event",
			slog.String("type", event.Type),
			slog.String("kind", event.Kind),
			slog.String("key", event.Key),
			slog.Any("error", err),
		)
	}
}
