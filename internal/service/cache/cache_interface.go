// Package cache holds calculation summaries keyed by calculation fingerprint.
package cache

import "github.com/guttosm/salinity-service/internal/domain/model"

// Cache stores summaries by calculation fingerprint.
type Cache interface {
	Get(key string) (model.CalculationSummary, bool)
	Set(key string, value model.CalculationSummary)
	Invalidate(key string)
	Clear()
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
	Capacity  int
}

// StatsReporter is implemented by caches that track their activity.
type StatsReporter interface {
	Stats() Stats
}
