// Package service contains the business logic for the lysate impact calculator.
package service

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/metrics"
	"github.com/guttosm/lysate-impact/internal/service/cache"
)

var _ cache.CacheWithMetrics = (*ristrettoCache)(nil)

// ristrettoCache adapts a ristretto cache to the cache.Cache interface.
// Every entry costs 1, so capacity is a plain entry count.
type ristrettoCache struct {
	store    *ristretto.Cache
	ttl      time.Duration
	capacity int
}

// newRistrettoCache creates a scenario cache holding up to capacity results.
// A zero ttl keeps entries until they are evicted.
func newRistrettoCache(capacity int, ttl time.Duration) (*ristrettoCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create scenario cache: %w", err)
	}
	metrics.UpdateCacheCapacity(capacity)
	return &ristrettoCache{store: store, ttl: ttl, capacity: capacity}, nil
}

// Get retrieves a cached scenario result.
func (c *ristrettoCache) Get(key string) (model.ScenarioResult, bool) {
	value, found := c.store.Get(key)
	if !found {
		metrics.RecordCacheOperation("get", "miss")
		return model.ScenarioResult{}, false
	}
	result, ok := value.(model.ScenarioResult)
	if !ok {
		metrics.RecordCacheOperation("get", "type_mismatch")
		return model.ScenarioResult{}, false
	}
	metrics.RecordCacheOperation("get", "hit")
	return cloneResult(result), true
}

// Set stores a scenario result. Ristretto may drop the write under contention,
// which only costs a recomputation.
func (c *ristrettoCache) Set(key string, value model.ScenarioResult) {
	if !c.store.SetWithTTL(key, cloneResult(value), 1, c.ttl) {
		metrics.RecordCacheOperation("set", "dropped")
		return
	}
	// Make the entry visible to the next Get.
	c.store.Wait()
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheEvictions(c.Metrics().Evictions)
}

// Stop releases the cache's background goroutines.
func (c *ristrettoCache) Stop() {
	c.store.Close()
}

// Metrics returns current cache performance metrics.
func (c *ristrettoCache) Metrics() cache.Metrics {
	m := c.store.Metrics
	if m == nil {
		return cache.Metrics{Capacity: c.capacity}
	}
	return cache.Metrics{
		Hits:      int64(m.Hits()),
		Misses:    int64(m.Misses()),
		Evictions: int64(m.KeysEvicted()),
		Capacity:  c.capacity,
	}
}

// cloneResult copies the class slice so cached entries never share a backing
// array with a caller.
func cloneResult(r model.ScenarioResult) model.ScenarioResult {
	r.ClassAvoided = slices.Clone(r.ClassAvoided)
	return r
}

// scenarioKey builds the cache key for one calculation. Inputs are formatted
// with full precision so distinct floats never collide.
func scenarioKey(prevalence, adoptionRate, effectSize float64) string {
	return fmt.Sprintf("%s|%s|%s", formatKeyFloat(prevalence), formatKeyFloat(adoptionRate), formatKeyFloat(effectSize))
}

func formatKeyFloat(v float64) string {
	return fmt.Sprintf("%016x", math.Float64bits(v))
}
