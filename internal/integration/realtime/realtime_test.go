package realtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pro/backend/config"
	"github.com/finanzas-pro/backend/internal/application/adapter"
)

const testChannel = "finanzas:test"

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func receiveEvent(t *testing.T, ch <-chan adapter.ChangeEvent) adapter.ChangeEvent {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
		return adapter.ChangeEvent{}
	}
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "redis://" + server.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	client, err = NewRedisClient(context.Background(), &config.RedisConfig{URL: server.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	addr := server.Addr()
	server.Close()
	_, err = NewRedisClient(context.Background(), &config.RedisConfig{URL: addr})
	assert.Error(t, err)
}

func TestRedisNotifierPublishSubscribe(t *testing.T) {
	server, client := newTestRedis(t)
	notifier := NewRedisNotifier(client, testChannel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := notifier.Subscribe(ctx)
	require.NoError(t, err)

	sent := adapter.ChangeEvent{
		Collection: adapter.CollectionTransactions,
		Operation:  adapter.OperationCreate,
		ID:         "abc",
		At:         time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, notifier.Publish(ctx, sent))

	got := receiveEvent(t, events)
	assert.Equal(t, sent.Collection, got.Collection)
	assert.Equal(t, sent.ID, got.ID)
	assert.True(t, sent.At.Equal(got.At))

	version, err := server.Get(versionKey(testChannel))
	require.NoError(t, err)
	assert.Equal(t, "1", version)

	// Malformed payloads are skipped
	server.Publish(testChannel, "not json")
	require.NoError(t, notifier.Publish(ctx, adapter.ChangeEvent{ID: "def"}))
	assert.Equal(t, "def", receiveEvent(t, events).ID)
}

func TestRedisNotifierCloseEndsSubscriptions(t *testing.T) {
	_, client := newTestRedis(t)
	notifier := NewRedisNotifier(client, testChannel)

	events, err := notifier.Subscribe(context.Background())
	require.NoError(t, err)
	require.NoError(t, notifier.Close())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed")
	}
}

func TestMemoryNotifier(t *testing.T) {
	notifier := NewMemoryNotifier()
	ctx, cancel := context.WithCancel(context.Background())

	first, err := notifier.Subscribe(ctx)
	require.NoError(t, err)
	second, err := notifier.Subscribe(context.Background())
	require.NoError(t, err)

	require.NoError(t, notifier.Publish(ctx, adapter.ChangeEvent{ID: "1"}))
	assert.Equal(t, "1", receiveEvent(t, first).ID)
	assert.Equal(t, "1", receiveEvent(t, second).ID)

	cancel()
	require.Eventually(t, func() bool {
		_, ok := <-first
		return !ok
	}, 2*time.Second, 10*time.Millisecond)

	// A full buffer drops events instead of blocking the publisher
	for i := 0; i < memorySubscriberBuffer+5; i++ {
		require.NoError(t, notifier.Publish(context.Background(), adapter.ChangeEvent{ID: "x"}))
	}
	assert.Len(t, second, memorySubscriberBuffer)

	require.NoError(t, notifier.Close())
	late, err := notifier.Subscribe(context.Background())
	require.NoError(t, err)
	_, ok := <-late
	assert.False(t, ok)
}

func TestMetricsCache(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()
	cache := NewMetricsCache(client, testChannel, time.Minute)
	notifier := NewRedisNotifier(client, testChannel)

	type report struct {
		Total string
	}

	version, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	var dest report
	found, err := cache.Get(ctx, "summary:v0", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "summary:v0", report{Total: "100"}))
	found, err = cache.Get(ctx, "summary:v0", &dest)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "100", dest.Total)

	require.NoError(t, notifier.Publish(ctx, adapter.ChangeEvent{ID: "1"}))
	version, err = cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestMetricsCacheVersionReadOncePerRequest(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()
	cache := NewMetricsCache(client, testChannel, time.Minute)
	notifier := NewRedisNotifier(client, testChannel)

	// A request reads the version, then a write publishes before it stores its result
	before, err := cache.Version(ctx)
	require.NoError(t, err)
	require.NoError(t, notifier.Publish(ctx, adapter.ChangeEvent{ID: "1"}))
	require.NoError(t, cache.Set(ctx, fmt.Sprintf("summary:v%d", before), map[string]string{"income": "1500"}))

	after, err := cache.Version(ctx)
	require.NoError(t, err)
	require.NotEqual(t, before, after)

	found, err := cache.Get(ctx, fmt.Sprintf("summary:v%d", after), &map[string]string{})
	require.NoError(t, err)
	assert.False(t, found, "stale result must not be visible at the new version")
}

func TestMetricsCacheExpires(t *testing.T) {
	server, client := newTestRedis(t)
	ctx := context.Background()
	cache := NewMetricsCache(client, testChannel, time.Minute)

	require.NoError(t, cache.Set(ctx, "summary", map[string]int{"a": 1}))
	server.FastForward(2 * time.Minute)

	found, err := cache.Get(ctx, "summary", &map[string]int{})
	require.NoError(t, err)
	assert.False(t, found)
}
