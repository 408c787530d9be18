package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/observability"
)

const (
	eventCacheName      = "events"
	eventCacheKeyPrefix = "events:id:"
	eventCacheListKey   = "events:all"
)

// EventCacheStore is the slice of redis commands the event cache needs.
// *redis.Client satisfies it.
type EventCacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// cachedEventRepository decorates an EventRepository with a read-through
// cache. Cache failures degrade to direct reads; writes invalidate the
// affected keys before hitting the store.
type cachedEventRepository struct {
	inner   EventRepository
	cache   EventCacheStore
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCachedEventRepository wraps inner with caching.
func NewCachedEventRepository(inner EventRepository, cache EventCacheStore, ttl time.Duration, metrics *observability.Metrics, logger *zap.Logger) EventRepository {
	return &cachedEventRepository{inner: inner, cache: cache, ttl: ttl, metrics: metrics, logger: logger}
}

func (r *cachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	key := eventCacheKeyPrefix + id
	if raw, err := r.cache.Get(ctx, key).Bytes(); err == nil {
		var event domain.Event
		if err := json.Unmarshal(raw, &event); err == nil {
			r.metrics.RecordCacheHit(eventCacheName)
			return &event, nil
		}
	}
	r.metrics.RecordCacheMiss(eventCacheName)

	event, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, event)
	return event, nil
}

func (r *cachedEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	if raw, err := r.cache.Get(ctx, eventCacheListKey).Bytes(); err == nil {
		var events []domain.Event
		if err := json.Unmarshal(raw, &events); err == nil {
			r.metrics.RecordCacheHit(eventCacheName)
			return events, nil
		}
	}
	r.metrics.RecordCacheMiss(eventCacheName)

	events, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, eventCacheListKey, events)
	return events, nil
}

func (r *cachedEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.invalidate(ctx, eventCacheListKey)
	return r.inner.Create(ctx, event)
}

func (r *cachedEventRepository) Update(ctx context.Context, event *domain.Event) error {
	r.invalidate(ctx, eventCacheKeyPrefix+event.ID, eventCacheListKey)
	return r.inner.Update(ctx, event)
}

func (r *cachedEventRepository) Delete(ctx context.Context, id string) error {
	r.invalidate(ctx, eventCacheKeyPrefix+id, eventCacheListKey)
	return r.inner.Delete(ctx, id)
}

func (r *cachedEventRepository) AdjustAvailability(ctx context.Context, id string, delta int) error {
	r.invalidate(ctx, eventCacheKeyPrefix+id, eventCacheListKey)
	return r.inner.AdjustAvailability(ctx, id, delta)
}

func (r *cachedEventRepository) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("event cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *cachedEventRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("event cache invalidation failed", zap.Error(err))
	}
}
