package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/salinity-service/internal/circuitbreaker"
	"github.com/guttosm/salinity-service/internal/domain/model"
)

// guarded runs op through cb and hands back its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, op func() (T, error)) (T, error) {
	var out T
	err := cb.Execute(ctx, func() error {
		var opErr error
		out, opErr = op()
		return opErr
	})
	return out, err
}

// bestEffort drops the open-circuit error for writes nobody waits on.
func bestEffort(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// AssumptionProfilesRepositoryWithCircuitBreaker guards the profiles
// collection. Reads degrade to "no active profile" while the circuit is
// open so calculations fall back to the built-in assumptions.
type AssumptionProfilesRepositoryWithCircuitBreaker struct {
	repo AssumptionProfilesRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

func NewAssumptionProfilesRepositoryWithCircuitBreaker(repo AssumptionProfilesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AssumptionProfilesRepositoryWithCircuitBreaker {
	return &AssumptionProfilesRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *AssumptionProfilesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*AssumptionProfile, error) {
	profile, err := guarded(ctx, r.cb, func() (*AssumptionProfile, error) { return r.repo.GetActive(ctx) })
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return profile, err
}

func (r *AssumptionProfilesRepositoryWithCircuitBreaker) Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*AssumptionProfile, error) {
	return guarded(ctx, r.cb, func() (*AssumptionProfile, error) { return r.repo.Create(ctx, assumptions, createdBy) })
}

func (r *AssumptionProfilesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]AssumptionProfile, error) {
	return guarded(ctx, r.cb, func() ([]AssumptionProfile, error) { return r.repo.List(ctx, limit) })
}

// CalculationsRepositoryWithCircuitBreaker guards the calculation history.
// History writes are dropped while the circuit is open.
type CalculationsRepositoryWithCircuitBreaker struct {
	repo CalculationsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

func NewCalculationsRepositoryWithCircuitBreaker(repo CalculationsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CalculationsRepositoryWithCircuitBreaker {
	return &CalculationsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *CalculationsRepositoryWithCircuitBreaker) Create(ctx context.Context, record *CalculationRecord) error {
	return bestEffort(r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, record) }))
}

// GetByID does not count a missing record against the store.
func (r *CalculationsRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*CalculationRecord, error) {
	record, err := guarded(ctx, r.cb, func() (*CalculationRecord, error) {
		rec, err := r.repo.GetByID(ctx, id)
		if errors.Is(err, ErrCalculationNotFound) {
			return nil, nil
		}
		return rec, err
	})
	if err == nil && record == nil {
		return nil, ErrCalculationNotFound
	}
	return record, err
}

func (r *CalculationsRepositoryWithCircuitBreaker) List(ctx context.Context, opts CalculationQueryOptions) ([]CalculationRecord, error) {
	return guarded(ctx, r.cb, func() ([]CalculationRecord, error) { return r.repo.List(ctx, opts) })
}

func (r *CalculationsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts CalculationQueryOptions) (int64, error) {
	return guarded(ctx, r.cb, func() (int64, error) { return r.repo.Count(ctx, opts) })
}

// LogsRepositoryWithCircuitBreaker guards the logs collection; batches are
// dropped while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo LogsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) InsertBatch(ctx context.Context, entries []*model.LogEntry) error {
	return bestEffort(r.cb.Execute(ctx, func() error { return r.repo.InsertBatch(ctx, entries) }))
}
