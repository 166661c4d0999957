// Package snapshot keeps an in-memory view of every collection and pushes a
// fresh copy to subscribers whenever a change event arrives.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// Snapshot is an immutable view of the collections at one point in time.
// Consumers must not modify the slices.
type Snapshot struct {
	Version       uint64
	Transactions  []*entity.Transaction
	FixedExpenses []*entity.FixedExpense
	Categories    *entity.CategorySet
	LoadedAt      time.Time
}

// Predicate selects the transactions a subscriber receives. Nil keeps everything.
type Predicate func(*entity.Transaction) bool

type subscriber struct {
	ch        chan Snapshot
	predicate Predicate
}

// Observer reloads the collections on change events and fans snapshots out.
type Observer struct {
	transactionRepo  adapter.TransactionRepository
	fixedExpenseRepo adapter.FixedExpenseRepository
	categoryRepo     adapter.CategoryRepository
	notifier         adapter.ChangeNotifier
	clock            adapter.Clock

	mu          sync.Mutex
	current     *Snapshot
	subscribers map[int]*subscriber
	nextID      int
}

// NewObserver creates a new Observer instance.
func NewObserver(
	transactionRepo adapter.TransactionRepository,
	fixedExpenseRepo adapter.FixedExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	notifier adapter.ChangeNotifier,
	clock adapter.Clock,
) *Observer {
	return &Observer{
		transactionRepo:  transactionRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		categoryRepo:     categoryRepo,
		notifier:         notifier,
		clock:            clock,
		subscribers:      make(map[int]*subscriber),
	}
}

// Run loads the first snapshot and then reloads on every change event until
// ctx is done. Only the initial load failure is returned.
func (o *Observer) Run(ctx context.Context) error {
	events, err := o.notifier.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to changes: %w", err)
	}

	if err := o.Reload(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			slog.Debug("change received", "collection", event.Collection, "operation", event.Operation, "id", event.ID)
			if err := o.Reload(ctx); err != nil {
				// Keep serving the previous snapshot
				slog.Warn("failed to reload snapshot", "error", err)
			}
		}
	}
}

// Reload reads the three collections concurrently and publishes the result.
func (o *Observer) Reload(ctx context.Context) error {
	var (
		transactions  []*entity.Transaction
		fixedExpenses []*entity.FixedExpense
		categories    *entity.CategorySet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = o.transactionRepo.FindAll(gctx, entity.TransactionFilter{})
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fixedExpenses, err = o.fixedExpenseRepo.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load fixed expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		set, found, err := o.categoryRepo.Load(gctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		if !found {
			set = entity.DefaultCategorySet()
		}
		categories = set
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	var version uint64 = 1
	if o.current != nil {
		version = o.current.Version + 1
	}
	o.current = &Snapshot{
		Version:       version,
		Transactions:  transactions,
		FixedExpenses: fixedExpenses,
		Categories:    categories,
		LoadedAt:      o.clock.Now(),
	}

	for _, sub := range o.subscribers {
		deliver(sub, *o.current)
	}
	return nil
}

// Latest returns the current snapshot, or nil before the first load.
func (o *Observer) Latest() *Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Subscribe returns a channel receiving every new snapshot, starting with the
// current one. The channel holds at most one pending snapshot and is closed
// once ctx is done.
func (o *Observer) Subscribe(ctx context.Context, predicate Predicate) <-chan Snapshot {
	sub := &subscriber{ch: make(chan Snapshot, 1), predicate: predicate}

	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subscribers[id] = sub
	if o.current != nil {
		deliver(sub, *o.current)
	}
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subscribers, id)
		close(sub.ch)
		o.mu.Unlock()
	}()

	return sub.ch
}

// SubscriberCount returns the number of live subscriptions.
func (o *Observer) SubscriberCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subscribers)
}

// deliver replaces any undelivered snapshot with s. Callers hold o.mu.
func deliver(sub *subscriber, s Snapshot) {
	if sub.predicate != nil {
		filtered := make([]*entity.Transaction, 0, len(s.Transactions))
		for _, t := range s.Transactions {
			if sub.predicate(t) {
				filtered = append(filtered, t)
			}
		}
		s.Transactions = filtered
	}

	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- s
}
