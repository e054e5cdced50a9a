package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/logger"
	"github.com/guttosm/salinity-service/internal/metrics"
	"github.com/guttosm/salinity-service/internal/repository"
)

// LogShipperConfig tunes how request and audit entries are batched.
type LogShipperConfig struct {
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	WriteTimeout  time.Duration
}

// DefaultLogShipperConfig returns the batching used by the service.
func DefaultLogShipperConfig() LogShipperConfig {
	return LogShipperConfig{
		QueueSize:     1000,
		BatchSize:     50,
		FlushInterval: 2 * time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// LogShipper writes log entries to the logs collection in batches from a
// single goroutine. Enqueue never blocks a request; entries that arrive
// while the queue is full, or after Close, are dropped and counted.
type LogShipper struct {
	repo  repository.LogsRepositoryInterface
	cfg   LogShipperConfig
	log   zerolog.Logger
	queue chan *model.LogEntry
	done  chan struct{}

	mu     sync.RWMutex
	closed bool

	dropped atomic.Int64
}

// NewLogShipper starts a shipper writing to repo. Non-positive settings
// take their DefaultLogShipperConfig value.
func NewLogShipper(repo repository.LogsRepositoryInterface, cfg LogShipperConfig) *LogShipper {
	def := DefaultLogShipperConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	s := &LogShipper{
		repo:  repo,
		cfg:   cfg,
		log:   logger.Component("log_shipper"),
		queue: make(chan *model.LogEntry, cfg.QueueSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Enqueue hands e to the shipper and reports whether it was accepted.
func (s *LogShipper) Enqueue(e *model.LogEntry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.closed {
		select {
		case s.queue <- e:
			return true
		default:
		}
	}
	s.dropped.Add(1)
	metrics.RecordRequestLogs("dropped", 1)
	return false
}

// Dropped returns how many entries were refused so far.
func (s *LogShipper) Dropped() int64 {
	return s.dropped.Load()
}

// Close stops accepting entries and waits for the queued ones to be
// written, or for ctx to end.
func (s *LogShipper) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *LogShipper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, s.cfg.BatchSize)
	for {
		select {
		case e, ok := <-s.queue:
			if !ok {
				s.flush(batch)
				return
			}
			batch = append(batch, e)
			if len(batch) < s.cfg.BatchSize {
				continue
			}
		case <-ticker.C:
			if len(batch) == 0 {
				continue
			}
		}
		s.flush(batch)
		batch = make([]*model.LogEntry, 0, s.cfg.BatchSize)
	}
}

func (s *LogShipper) flush(batch []*model.LogEntry) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
	defer cancel()

	if err := s.repo.InsertBatch(ctx, batch); err != nil {
		metrics.RecordRequestLogs("failed", len(batch))
		s.log.Warn().Err(err).Int("entries", len(batch)).Msg("log batch not stored")
		return
	}
	metrics.RecordRequestLogs("stored", len(batch))
}
