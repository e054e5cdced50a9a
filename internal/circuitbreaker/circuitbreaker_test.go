//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(failures, successes int) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	cb := New(Config{
		Name:             "mongodb_calculations",
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          time.Minute,
	})
	cb.now = clock.now
	return cb, clock
}

func fail() error    { return errStoreDown }
func succeed() error { return nil }

func TestCircuitBreaker_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		steps func(t *testing.T, cb *CircuitBreaker, clock *fakeClock)
		want  State
	}{
		{
			name: "failures below threshold stay closed",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *fakeClock) {
				assert.ErrorIs(t, cb.Execute(context.Background(), fail), errStoreDown)
			},
			want: StateClosed,
		},
		{
			name: "success resets the failure run",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *fakeClock) {
				_ = cb.Execute(context.Background(), fail)
				_ = cb.Execute(context.Background(), succeed)
				_ = cb.Execute(context.Background(), fail)
			},
			want: StateClosed,
		},
		{
			name: "threshold opens and rejects without calling",
			steps: func(t *testing.T, cb *CircuitBreaker, _ *fakeClock) {
				_ = cb.Execute(context.Background(), fail)
				_ = cb.Execute(context.Background(), fail)
				called := false
				err := cb.Execute(context.Background(), func() error { called = true; return nil })
				assert.ErrorIs(t, err, ErrCircuitOpen)
				assert.False(t, called)
			},
			want: StateOpen,
		},
		{
			name: "cool-down allows a half-open trial",
			steps: func(t *testing.T, cb *CircuitBreaker, clock *fakeClock) {
				_ = cb.Execute(context.Background(), fail)
				_ = cb.Execute(context.Background(), fail)
				clock.advance(time.Minute)
				require.NoError(t, cb.Execute(context.Background(), succeed))
			},
			want: StateHalfOpen,
		},
		{
			name: "half-open successes close",
			steps: func(t *testing.T, cb *CircuitBreaker, clock *fakeClock) {
				_ = cb.Execute(context.Background(), fail)
				_ = cb.Execute(context.Background(), fail)
				clock.advance(time.Minute)
				_ = cb.Execute(context.Background(), succeed)
				_ = cb.Execute(context.Background(), succeed)
			},
			want: StateClosed,
		},
		{
			name: "half-open failure reopens",
			steps: func(t *testing.T, cb *CircuitBreaker, clock *fakeClock) {
				_ = cb.Execute(context.Background(), fail)
				_ = cb.Execute(context.Background(), fail)
				clock.advance(time.Minute)
				_ = cb.Execute(context.Background(), fail)
				clock.advance(30 * time.Second)
				assert.ErrorIs(t, cb.Execute(context.Background(), succeed), ErrCircuitOpen)
			},
			want: StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(2, 2)
			tt.steps(t, cb, clock)
			assert.Equal(t, tt.want, cb.State())
		})
	}
}

func TestCircuitBreaker_CancelledCallsAreNeutral(t *testing.T) {
	cb, _ := newTestBreaker(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := cb.Execute(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = cb.Execute(context.Background(), func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Snapshot(t *testing.T) {
	cb, clock := newTestBreaker(3, 1)

	s := cb.Snapshot()
	assert.Equal(t, "mongodb_calculations", s.Name)
	assert.True(t, s.Healthy())
	assert.True(t, s.LastFailure.IsZero())

	_ = cb.Execute(context.Background(), fail)
	s = cb.Snapshot()
	assert.Equal(t, 1, s.Failures)
	assert.Equal(t, clock.t, s.LastFailure)
	assert.True(t, s.Healthy())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	type transition struct{ from, to State }
	var seen []transition

	clock := &fakeClock{t: time.Now()}
	cb := New(Config{
		Name:    "mongodb_assumption_profiles",
		Timeout: time.Second,
		OnStateChange: func(name string, from, to State) {
			assert.Equal(t, "mongodb_assumption_profiles", name)
			seen = append(seen, transition{from, to})
		},
	})
	cb.now = clock.now

	_ = cb.Execute(context.Background(), fail)
	clock.advance(time.Second)
	_ = cb.Execute(context.Background(), succeed)

	assert.Equal(t, []transition{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, seen)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(7).String())
}
