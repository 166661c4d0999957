// Package notify publishes change events after successful mutations.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/finanzas-pro/backend/internal/application/adapter"
)

// PublishTimeout bounds how long a mutation waits on the change transport.
var PublishTimeout = 2 * time.Second

// Publish announces a change. A failed publish is logged and swallowed: the
// mutation already succeeded and observers catch up on the next event.
func Publish(ctx context.Context, notifier adapter.ChangeNotifier, collection, operation, id string) {
	if notifier == nil {
		return
	}

	event := adapter.ChangeEvent{
		Collection: collection,
		Operation:  operation,
		ID:         id,
		At:         time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	if err := notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish change event",
			"collection", collection,
			"operation", operation,
			"id", id,
			"error", err,
		)
	}
}
