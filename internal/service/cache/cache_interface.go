package cache

import "github.com/guttosm/lysate-impact/internal/domain/model"

// Cache defines the interface for scenario result caching.
type Cache interface {
	Get(key string) (model.ScenarioResult, bool)
	Set(key string, value model.ScenarioResult)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
