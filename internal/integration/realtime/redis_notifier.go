package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/finanzas-pro/backend/internal/application/adapter"
)

// RedisNotifier publishes change events on a Redis channel. Every publish also
// bumps the data version used by MetricsCache.
type RedisNotifier struct {
	client  *redis.Client
	channel string

	closeOnce sync.Once
	done      chan struct{}
}

// NewRedisNotifier creates a notifier on channel. The client stays owned by the caller.
func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		done:    make(chan struct{}),
	}
}

// Publish bumps the data version and broadcasts the event.
func (n *RedisNotifier) Publish(ctx context.Context, event adapter.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	_, err = n.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(n.channel))
		pipe.Publish(ctx, n.channel, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Subscribe listens on the channel until ctx is done or the notifier is closed.
// It returns once the subscription is confirmed by the server.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan adapter.ChangeEvent, error) {
	pubsub := n.client.Subscribe(ctx, n.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", n.channel, err)
	}

	out := make(chan adapter.ChangeEvent, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-n.done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event adapter.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.Warn("discarding malformed change event", "channel", n.channel, "error", err)
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				case <-n.done:
					return
				}
			}
		}
	}()

	return out, nil
}

// Close ends every subscription opened by this notifier.
func (n *RedisNotifier) Close() error {
	n.closeOnce.Do(func() { close(n.done) })
	return nil
}
