package adaptertest

import (
	"context"
	"sync"

	"github.com/finanzas-pro/backend/internal/application/adapter"
)

// Notifier records published events and forwards them to subscribers.
type Notifier struct {
	mu          sync.Mutex
	events      []adapter.ChangeEvent
	subscribers []chan adapter.ChangeEvent
	Err         error
}

func (n *Notifier) Publish(_ context.Context, event adapter.ChangeEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.events = append(n.events, event)
	for _, ch := range n.subscribers {
		ch <- event
	}
	return nil
}

func (n *Notifier) Subscribe(ctx context.Context) (<-chan adapter.ChangeEvent, error) {
	ch := make(chan adapter.ChangeEvent, 16)

	n.mu.Lock()
	n.subscribers = append(n.subscribers, ch)
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, sub := range n.subscribers {
			if sub == ch {
				n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (n *Notifier) Close() error { return nil }

// Events returns a copy of the published events.
func (n *Notifier) Events() []adapter.ChangeEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]adapter.ChangeEvent(nil), n.events...)
}
