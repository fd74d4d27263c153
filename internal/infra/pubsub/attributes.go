package pubsub

import "storefront/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.DocumentEvent) map[string]string {
	return map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
		"kind":     event.Kind,
		"key":      event.Key,
	}
}
