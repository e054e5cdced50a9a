// Package circuitbreaker stops calling a failing MongoDB collection for a
// cool-down period, so calculations keep answering from built-in assumptions
// instead of waiting on an unreachable store.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/salinity-service/internal/logger"
)

// ErrCircuitOpen is returned without calling the store while the circuit is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker position.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen rejects calls until the cool-down elapses.
	StateOpen
	// StateHalfOpen lets trial calls through after the cool-down.
	StateHalfOpen
)

var stateNames = [...]string{"closed", "open", "half-open"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config tunes a breaker.
type Config struct {
	// Name labels logs, metrics and health output.
	Name string
	// FailureThreshold is the run of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the run of half-open successes that closes it again.
	SuccessThreshold int
	// Timeout is the cool-down before a half-open trial.
	Timeout time.Duration
	// OnStateChange runs after each transition with the breaker locked; it
	// must not call back into the breaker.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig matches the database defaults in config.Load.
func DefaultConfig() Config {
	return Config{
		Name:             "mongodb",
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker guards calls to one collection.
type CircuitBreaker struct {
	cfg Config
	now func() time.Time

	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	openedAt    time.Time
	lastFailure time.Time
}

// New builds a closed breaker. Thresholds below one are raised to one.
func New(cfg Config) *CircuitBreaker {
	cfg.FailureThreshold = max(cfg.FailureThreshold, 1)
	cfg.SuccessThreshold = max(cfg.SuccessThreshold, 1)
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// Execute runs fn unless the circuit is open. A cancelled context is the
// caller giving up, so it neither counts as a failure nor as a success.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cb.allow() {
		return ErrCircuitOpen
	}
	err := fn()
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) < cb.cfg.Timeout {
		return false
	}
	cb.moveTo(StateHalfOpen)
	return true
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch {
	case errors.Is(err, context.Canceled):
	case err != nil:
		cb.failures++
		cb.lastFailure = cb.now()
		if cb.state == StateHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
			cb.openedAt = cb.lastFailure
			cb.moveTo(StateOpen)
		}
	default:
		cb.failures = 0
		if cb.state == StateHalfOpen {
			cb.successes++
			if cb.successes >= cb.cfg.SuccessThreshold {
				cb.moveTo(StateClosed)
			}
		}
	}
}

// moveTo changes state and resets the run counters. Callers hold cb.mu.
func (cb *CircuitBreaker) moveTo(next State) {
	prev := cb.state
	if prev == next {
		return
	}
	cb.state = next
	cb.successes = 0
	if next == StateClosed {
		cb.failures = 0
	}

	l := logger.Component("circuitbreaker")
	ev := l.Info()
	if next == StateOpen {
		ev = l.Warn().Int("failures", cb.failures)
	}
	ev.Str("breaker", cb.cfg.Name).Stringer("from", prev).Stringer("to", next).Msg("circuit breaker state changed")

	if cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.cfg.Name, prev, next)
	}
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.cfg.Name
}

// State returns the current position.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Snapshot is a point-in-time view for health reporting.
type Snapshot struct {
	Name        string
	State       State
	Failures    int
	LastFailure time.Time
}

// Healthy reports whether calls are flowing normally.
func (s Snapshot) Healthy() bool {
	return s.State == StateClosed
}

// Snapshot returns the breaker's current view.
func (cb *CircuitBreaker) Snapshot() Snapshot {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return Snapshot{
		Name:        cb.cfg.Name,
		State:       cb.state,
		Failures:    cb.failures,
		LastFailure: cb.lastFailure,
	}
}
