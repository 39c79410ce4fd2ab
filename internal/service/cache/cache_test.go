//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

// TestCacheWithMetricsInterface ensures the interface contract can be satisfied.
func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics = &stubCache{entries: map[string]model.ScenarioResult{}}

	_, found := c.Get("0.1|0.5|-1.9")
	assert.False(t, found)

	c.Set("0.1|0.5|-1.9", model.ScenarioResult{CoursesReduced: 7615042})
	result, found := c.Get("0.1|0.5|-1.9")
	assert.True(t, found)
	assert.Equal(t, int64(7615042), result.CoursesReduced)

	assert.Equal(t, Metrics{Hits: 1, Misses: 1}, c.Metrics())
	c.Stop()
}

type stubCache struct {
	entries map[string]model.ScenarioResult
	hits    int64
	misses  int64
}

func (s *stubCache) Get(key string) (model.ScenarioResult, bool) {
	v, ok := s.entries[key]
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	return v, ok
}

func (s *stubCache) Set(key string, value model.ScenarioResult) { s.entries[key] = value }
func (s *stubCache) Stop()                                      {}
func (s *stubCache) Metrics() Metrics                           { return Metrics{Hits: s.hits, Misses: s.misses} }
