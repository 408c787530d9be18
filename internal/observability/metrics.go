package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process counters for the HTTP surface and the event
// cache. There is no exporter; readiness tooling and tests read the
// counters back through the accessors.
type Metrics struct {
	mu            sync.Mutex
	requests      map[string]int64
	totalDuration map[string]time.Duration
	errors        map[string]int64
	cacheHits     map[string]int64
	cacheMisses   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:      make(map[string]int64),
		totalDuration: make(map[string]time.Duration),
		errors:        make(map[string]int64),
		cacheHits:     make(map[string]int64),
		cacheMisses:   make(map[string]int64),
	}
}

// RecordRequest counts a completed request against its final status.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.totalDuration[key] += duration
}

// RecordError counts a request that resolved to an error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path+"|"+method+"|"+code]++
}

// RecordCacheHit counts a read served from the named cache.
func (m *Metrics) RecordCacheHit(cache string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits[cache]++
}

// RecordCacheMiss counts a read that fell through to the backing store.
func (m *Metrics) RecordCacheMiss(cache string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses[cache]++
}

// RequestCount returns how many requests completed with the given status.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey(path, method, status)]
}

// ErrorCount returns how many requests resolved to the given error code.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[path+"|"+method+"|"+code]
}

// CacheHits returns the hit count for the named cache.
func (m *Metrics) CacheHits(cache string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits[cache]
}

// CacheMisses returns the miss count for the named cache.
func (m *Metrics) CacheMisses(cache string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses[cache]
}

func requestKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
