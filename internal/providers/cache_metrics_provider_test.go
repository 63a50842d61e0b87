package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lifedash/internal/structures"
)

type countingMetrics struct {
	hits   int
	misses int
}

func (c *countingMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (c *countingMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (c *countingMetrics) IncCacheHits()                                    { c.hits++ }
func (c *countingMetrics) IncCacheMisses()                                  { c.misses++ }
func (c *countingMetrics) ObservePersistenceDuration(_ time.Duration)       {}

type stubCache struct {
	data map[string][]byte
	sets int
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string][]byte)}
}

func (s *stubCache) Get(key string) ([]byte, bool) {
	val, ok := s.data[key]
	return val, ok
}

func (s *stubCache) Set(key string, value []byte) {
	s.sets++
	s.data[key] = value
}

func TestMetricsCacheProvider_Hit(t *testing.T) {
	metrics := &countingMetrics{}
	inner := newStubCache()
	inner.data["key"] = []byte("value")

	c := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, []byte("value"), val)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 0, metrics.misses)
}

func TestMetricsCacheProvider_Miss(t *testing.T) {
	metrics := &countingMetrics{}
	c := &MetricsCacheProvider{inner: newStubCache(), metrics: metrics}

	_, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestMetricsCacheProvider_SetDelegates(t *testing.T) {
	metrics := &countingMetrics{}
	inner := newStubCache()
	c := &MetricsCacheProvider{inner: inner, metrics: metrics}

	c.Set("key", []byte("value"))
	assert.Equal(t, 1, inner.sets)
	assert.Equal(t, []byte("value"), inner.data["key"])
	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, 0, metrics.misses)
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: false},
	}
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, metrics)

	_, ok := c.Get("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, metrics.misses, "disabled cache should not count misses")
}

func TestNewInstrumentedCacheProvider_EnabledWraps(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1},
	}
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, metrics)

	_, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.misses)

	c.Set("key", []byte("value"))
	val, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, []byte("value"), val)
	assert.Equal(t, 1, metrics.hits)
}
