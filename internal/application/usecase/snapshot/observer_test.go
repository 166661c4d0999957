package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/adapter/adaptertest"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

type fixture struct {
	transactions *adaptertest.TransactionRepository
	notifier     *adaptertest.Notifier
	observer     *Observer
}

func newFixture(transactions ...*entity.Transaction) *fixture {
	f := &fixture{
		transactions: adaptertest.NewTransactionRepository(transactions...),
		notifier:     &adaptertest.Notifier{},
	}
	f.observer = NewObserver(
		f.transactions,
		adaptertest.NewFixedExpenseRepository(),
		adaptertest.NewCategoryRepository(nil),
		f.notifier,
		adaptertest.NewClock(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	)
	return f
}

func income(amount int64, date string) *entity.Transaction {
	return entity.NewTransaction("venta", decimal.NewFromInt(amount), entity.TransactionTypeIncome, date, "", entity.TransactionStatusPaid, nil, nil)
}

func receive(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "channel closed")
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}

func TestReloadBuildsSnapshot(t *testing.T) {
	f := newFixture(income(10, "2024-01-01"))
	require.Nil(t, f.observer.Latest())

	require.NoError(t, f.observer.Reload(context.Background()))

	latest := f.observer.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, uint64(1), latest.Version)
	assert.Len(t, latest.Transactions, 1)
	assert.Equal(t, entity.DefaultIncomeCategories, latest.Categories.Income)
	assert.Empty(t, latest.FixedExpenses)
}

func TestFailedReloadKeepsPreviousSnapshot(t *testing.T) {
	f := newFixture(income(10, "2024-01-01"))
	ctx := context.Background()
	require.NoError(t, f.observer.Reload(ctx))

	f.transactions.Err = adaptertest.ErrForced
	assert.ErrorIs(t, f.observer.Reload(ctx), adaptertest.ErrForced)

	latest := f.observer.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, uint64(1), latest.Version)
	assert.Len(t, latest.Transactions, 1)
}

func TestSubscribeReceivesCurrentAndFilteredSnapshots(t *testing.T) {
	f := newFixture(income(10, "2024-01-01"), income(20, "2024-02-01"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, f.observer.Reload(ctx))

	onlyFebruary := func(tx *entity.Transaction) bool { return tx.Date >= "2024-02-01" }
	ch := f.observer.Subscribe(ctx, onlyFebruary)

	s := receive(t, ch)
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "2024-02-01", s.Transactions[0].Date)

	// The shared snapshot is not filtered
	assert.Len(t, f.observer.Latest().Transactions, 2)
}

func TestSlowSubscriberSeesOnlyLatest(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := f.observer.Subscribe(ctx, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, f.observer.Reload(ctx))
	}

	s := receive(t, ch)
	assert.Equal(t, uint64(3), s.Version)

	select {
	case extra := <-ch:
		t.Fatalf("expected no buffered snapshot, got version %d", extra.Version)
	default:
	}
}

func TestRunReloadsOnChangeEvents(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.observer.Run(ctx) }()

	require.Eventually(t, func() bool { return f.observer.Latest() != nil }, 2*time.Second, 10*time.Millisecond)
	ch := f.observer.Subscribe(ctx, nil)
	assert.Empty(t, receive(t, ch).Transactions)

	tx := income(30, "2024-03-01")
	require.NoError(t, f.transactions.Create(ctx, tx))
	require.NoError(t, f.notifier.Publish(ctx, adapter.ChangeEvent{
		Collection: adapter.CollectionTransactions,
		Operation:  adapter.OperationCreate,
		ID:         tx.ID.String(),
	}))

	s := receive(t, ch)
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, tx.ID, s.Transactions[0].ID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("observer did not stop")
	}
}

func TestCancelledSubscriptionIsRemoved(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	ch := f.observer.Subscribe(ctx, nil)
	assert.Equal(t, 1, f.observer.SubscriberCount())

	cancel()
	require.Eventually(t, func() bool { return f.observer.SubscriberCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok)

	// Reloading with no subscribers left is fine
	assert.NoError(t, f.observer.Reload(context.Background()))
}
