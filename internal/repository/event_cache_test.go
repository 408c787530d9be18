package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/observability"
)

// mapCacheStore backs EventCacheStore with a plain map.
type mapCacheStore struct {
	data map[string][]byte
	err  error
}

func newMapCacheStore() *mapCacheStore {
	return &mapCacheStore{data: map[string][]byte{}}
}

func (s *mapCacheStore) Get(_ context.Context, key string) *redis.StringCmd {
	if s.err != nil {
		return redis.NewStringResult("", s.err)
	}
	if raw, ok := s.data[key]; ok {
		return redis.NewStringResult(string(raw), nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (s *mapCacheStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if s.err != nil {
		return redis.NewStatusResult("", s.err)
	}
	raw, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}
	s.data[key] = raw
	return redis.NewStatusResult("OK", nil)
}

func (s *mapCacheStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if s.err != nil {
		return redis.NewIntResult(0, s.err)
	}
	var removed int64
	for _, key := range keys {
		if _, ok := s.data[key]; ok {
			delete(s.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

// countingEventRepo tracks how often each read reaches the backing store.
type countingEventRepo struct {
	events  map[string]domain.Event
	getByID int
	lists   int
}

func newCountingEventRepo(events ...domain.Event) *countingEventRepo {
	repo := &countingEventRepo{events: map[string]domain.Event{}}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (r *countingEventRepo) Create(_ context.Context, e *domain.Event) error {
	r.events[e.ID] = *e
	return nil
}

func (r *countingEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.events[e.ID] = *e
	return nil
}

func (r *countingEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.getByID++
	e, ok := r.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &e, nil
}

func (r *countingEventRepo) List(_ context.Context) ([]domain.Event, error) {
	r.lists++
	out := []domain.Event{}
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *countingEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.events, id)
	return nil
}

func (r *countingEventRepo) AdjustAvailability(_ context.Context, id string, delta int) error {
	e, ok := r.events[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	e.EventAvailability += delta
	r.events[id] = e
	return nil
}

func cachedFixture(events ...domain.Event) (*countingEventRepo, *mapCacheStore, *observability.Metrics, EventRepository) {
	inner := newCountingEventRepo(events...)
	store := newMapCacheStore()
	metrics := observability.NewMetrics()
	cached := NewCachedEventRepository(inner, store, time.Minute, metrics, zap.NewNop())
	return inner, store, metrics, cached
}

func TestCachedEventRepositoryReadThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("miss fills the cache, second read hits it", func(t *testing.T) {
		inner, _, metrics, cached := cachedFixture(domain.Event{ID: "evt-1", EventName: "Go Conf"})

		first, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, "Go Conf", first.EventName)
		assert.Equal(t, 1, inner.getByID)
		assert.Equal(t, int64(1), metrics.CacheMisses("events"))

		second, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, "Go Conf", second.EventName)
		assert.Equal(t, 1, inner.getByID)
		assert.Equal(t, int64(1), metrics.CacheHits("events"))
	})

	t.Run("list is cached the same way", func(t *testing.T) {
		inner, _, metrics, cached := cachedFixture(domain.Event{ID: "evt-1"}, domain.Event{ID: "evt-2"})

		first, err := cached.List(ctx)
		require.NoError(t, err)
		assert.Len(t, first, 2)

		second, err := cached.List(ctx)
		require.NoError(t, err)
		assert.Len(t, second, 2)
		assert.Equal(t, 1, inner.lists)
		assert.Equal(t, int64(1), metrics.CacheHits("events"))
	})

	t.Run("missing events are not cached", func(t *testing.T) {
		inner, _, _, cached := cachedFixture()

		_, err := cached.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
		_, err = cached.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
		assert.Equal(t, 2, inner.getByID)
	})
}

func TestCachedEventRepositoryInvalidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("update evicts id and list keys", func(t *testing.T) {
		inner, store, _, cached := cachedFixture(domain.Event{ID: "evt-1", EventDescription: "old"})

		_, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		_, err = cached.List(ctx)
		require.NoError(t, err)
		require.Contains(t, store.data, "events:id:evt-1")
		require.Contains(t, store.data, "events:all")

		require.NoError(t, cached.Update(ctx, &domain.Event{ID: "evt-1", EventDescription: "new"}))
		assert.NotContains(t, store.data, "events:id:evt-1")
		assert.NotContains(t, store.data, "events:all")

		fresh, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, "new", fresh.EventDescription)
		assert.Equal(t, 2, inner.getByID)
	})

	t.Run("adjusting availability evicts", func(t *testing.T) {
		_, store, _, cached := cachedFixture(domain.Event{ID: "evt-1", EventAvailability: 10})

		_, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		require.NoError(t, cached.AdjustAvailability(ctx, "evt-1", -1))
		assert.NotContains(t, store.data, "events:id:evt-1")

		fresh, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, 9, fresh.EventAvailability)
	})

	t.Run("delete evicts", func(t *testing.T) {
		_, store, _, cached := cachedFixture(domain.Event{ID: "evt-1"})

		_, err := cached.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		require.NoError(t, cached.Delete(ctx, "evt-1"))
		assert.NotContains(t, store.data, "events:id:evt-1")

		_, err = cached.GetByID(ctx, "evt-1")
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	})

	t.Run("create evicts the list key", func(t *testing.T) {
		inner, store, _, cached := cachedFixture(domain.Event{ID: "evt-1"})

		_, err := cached.List(ctx)
		require.NoError(t, err)
		require.Contains(t, store.data, "events:all")

		require.NoError(t, cached.Create(ctx, &domain.Event{ID: "evt-2"}))
		assert.NotContains(t, store.data, "events:all")

		fresh, err := cached.List(ctx)
		require.NoError(t, err)
		assert.Len(t, fresh, 2)
		assert.Equal(t, 2, inner.lists)
	})
}

func TestCachedEventRepositoryDegradesWhenCacheDown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner, store, metrics, cached := cachedFixture(domain.Event{ID: "evt-1", EventName: "Go Conf"})
	store.err = errors.New("connection refused")

	event, err := cached.GetByID(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "Go Conf", event.EventName)
	assert.Equal(t, 1, inner.getByID)
	assert.Equal(t, int64(1), metrics.CacheMisses("events"))

	require.NoError(t, cached.Update(ctx, &domain.Event{ID: "evt-1", EventName: "Go Conf 2"}))
	fresh, err := cached.GetByID(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "Go Conf 2", fresh.EventName)
}
