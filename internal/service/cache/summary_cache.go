package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/groupcache/lru"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/metrics"
)

// SummaryCache is a sharded LRU of calculation summaries with a fixed entry
// lifetime. Expired entries are dropped when they are next read.
type SummaryCache struct {
	shards   []*shard
	ttl      time.Duration
	capacity int
	now      func() time.Time

	hits, misses, evictions atomic.Int64
}

type shard struct {
	mu      sync.Mutex
	entries *lru.Cache
}

type entry struct {
	summary model.CalculationSummary
	expires time.Time
}

// NewSummaryCache creates a cache holding up to capacity summaries spread over
// the given number of shards. A non-positive ttl keeps entries until evicted.
func NewSummaryCache(capacity int, ttl time.Duration, shards int) *SummaryCache {
	if shards < 1 {
		shards = 1
	}
	if capacity < shards {
		shards = max(capacity, 1)
	}
	perShard := max(capacity/shards, 1)

	c := &SummaryCache{
		shards:   make([]*shard, shards),
		ttl:      ttl,
		capacity: perShard * shards,
		now:      time.Now,
	}
	for i := range c.shards {
		c.shards[i] = &shard{entries: lru.New(perShard)}
	}
	metrics.UpdateCacheMetrics(0, c.capacity)
	return c
}

func (c *SummaryCache) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return c.shards[h.Sum32()%uint32(len(c.shards))]
}

// Get returns the cached summary for key if present and not expired.
func (c *SummaryCache) Get(key string) (model.CalculationSummary, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries.Get(key)
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.CalculationSummary{}, false
	}
	e := v.(entry)
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		s.entries.Remove(key)
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.CalculationSummary{}, false
	}
	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return e.summary, true
}

// Set stores value under key, evicting the shard's least recently used
// summary when it is full.
func (c *SummaryCache) Set(key string, value model.CalculationSummary) {
	e := entry{summary: value}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}

	s := c.shardFor(key)
	s.mu.Lock()
	_, existed := s.entries.Get(key)
	full := s.entries.Len() >= s.entries.MaxEntries
	s.entries.Add(key, e)
	s.mu.Unlock()

	if !existed && full {
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate drops the summary stored under key.
func (c *SummaryCache) Invalidate(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	s.entries.Remove(key)
	s.mu.Unlock()
}

// Clear drops every summary.
func (c *SummaryCache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = lru.New(s.entries.MaxEntries)
		s.mu.Unlock()
	}
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stats reports hit, miss and eviction counts and the current entry count.
func (c *SummaryCache) Stats() Stats {
	entries := 0
	for _, s := range c.shards {
		s.mu.Lock()
		entries += s.entries.Len()
		s.mu.Unlock()
	}
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   entries,
		Capacity:  c.capacity,
	}
}
