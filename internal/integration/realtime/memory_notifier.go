package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/finanzas-pro/backend/internal/application/adapter"
)

const memorySubscriberBuffer = 16

// MemoryNotifier delivers change events inside one process. It is used when
// Redis is not configured.
type MemoryNotifier struct {
	mu          sync.Mutex
	subscribers map[chan adapter.ChangeEvent]struct{}
	closed      bool
}

// NewMemoryNotifier creates a new MemoryNotifier instance.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{subscribers: make(map[chan adapter.ChangeEvent]struct{})}
}

// Publish hands the event to every subscriber without blocking.
// A subscriber with a full buffer misses the event.
func (n *MemoryNotifier) Publish(_ context.Context, event adapter.ChangeEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping change event for slow subscriber", "collection", event.Collection, "id", event.ID)
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done.
func (n *MemoryNotifier) Subscribe(ctx context.Context) (<-chan adapter.ChangeEvent, error) {
	ch := make(chan adapter.ChangeEvent, memorySubscriberBuffer)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		close(ch)
		return ch, nil
	}
	n.subscribers[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.remove(ch)
	}()
	return ch, nil
}

// Close ends every subscription.
func (n *MemoryNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	for ch := range n.subscribers {
		delete(n.subscribers, ch)
		close(ch)
	}
	return nil
}

func (n *MemoryNotifier) remove(ch chan adapter.ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.subscribers[ch]; ok {
		delete(n.subscribers, ch)
		close(ch)
	}
}
