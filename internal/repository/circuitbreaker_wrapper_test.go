//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/salinity-service/internal/circuitbreaker"
	"github.com/guttosm/salinity-service/internal/domain/model"
)

var errMongoDown = errors.New("mongo down")

type fakeProfiles struct {
	active *AssumptionProfile
	err    error
	calls  int
}

func (f *fakeProfiles) GetActive(context.Context) (*AssumptionProfile, error) {
	f.calls++
	return f.active, f.err
}

func (f *fakeProfiles) Create(_ context.Context, a model.Assumptions, by string) (*AssumptionProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &AssumptionProfile{Assumptions: a, CreatedBy: by, Active: true, Version: 1}, nil
}

func (f *fakeProfiles) List(context.Context, int) ([]AssumptionProfile, error) {
	f.calls++
	return nil, f.err
}

type fakeCalculations struct {
	err error
}

func (f *fakeCalculations) Create(context.Context, *CalculationRecord) error { return f.err }

func (f *fakeCalculations) GetByID(_ context.Context, id primitive.ObjectID) (*CalculationRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &CalculationRecord{ID: id}, nil
}

func (f *fakeCalculations) List(context.Context, CalculationQueryOptions) ([]CalculationRecord, error) {
	return nil, f.err
}

func (f *fakeCalculations) Count(context.Context, CalculationQueryOptions) (int64, error) {
	return 3, f.err
}

type fakeLogs struct {
	err     error
	batches int
}

func (f *fakeLogs) InsertBatch(context.Context, []*model.LogEntry) error {
	f.batches++
	return f.err
}

func tripOnFirstFailure() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		FailureThreshold: 1,
		Timeout:          time.Hour,
	})
}

func TestAssumptionProfilesRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		inner := &fakeProfiles{active: &AssumptionProfile{Version: 4}}
		repo := NewAssumptionProfilesRepositoryWithCircuitBreaker(inner, tripOnFirstFailure())

		got, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Version)

		created, err := repo.Create(ctx, model.DefaultAssumptions(), "ops")
		require.NoError(t, err)
		assert.Equal(t, "ops", created.CreatedBy)
	})

	t.Run("open circuit falls back to defaults on read", func(t *testing.T) {
		inner := &fakeProfiles{err: errMongoDown}
		cb := tripOnFirstFailure()
		repo := NewAssumptionProfilesRepositoryWithCircuitBreaker(inner, cb)

		_, err := repo.GetActive(ctx)
		assert.ErrorIs(t, err, errMongoDown)
		assert.Equal(t, circuitbreaker.StateOpen, cb.State())

		got, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("open circuit rejects new profiles", func(t *testing.T) {
		repo := NewAssumptionProfilesRepositoryWithCircuitBreaker(&fakeProfiles{err: errMongoDown}, tripOnFirstFailure())

		_, _ = repo.List(ctx, 5)
		_, err := repo.Create(ctx, model.DefaultAssumptions(), "ops")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}

func TestCalculationsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("not found does not trip the breaker", func(t *testing.T) {
		cb := tripOnFirstFailure()
		repo := NewCalculationsRepositoryWithCircuitBreaker(&fakeCalculations{err: ErrCalculationNotFound}, cb)

		_, err := repo.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrCalculationNotFound)
		assert.True(t, cb.Snapshot().Healthy())
	})

	t.Run("found record passes through", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := NewCalculationsRepositoryWithCircuitBreaker(&fakeCalculations{}, tripOnFirstFailure())

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("open circuit drops history writes", func(t *testing.T) {
		repo := NewCalculationsRepositoryWithCircuitBreaker(&fakeCalculations{err: errMongoDown}, tripOnFirstFailure())

		assert.ErrorIs(t, repo.Create(ctx, &CalculationRecord{}), errMongoDown)
		assert.NoError(t, repo.Create(ctx, &CalculationRecord{}))

		_, err := repo.List(ctx, CalculationQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})

	t.Run("count passes through", func(t *testing.T) {
		repo := NewCalculationsRepositoryWithCircuitBreaker(&fakeCalculations{}, tripOnFirstFailure())
		n, err := repo.Count(ctx, CalculationQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestLogsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	inner := &fakeLogs{err: errMongoDown}
	repo := NewLogsRepositoryWithCircuitBreaker(inner, tripOnFirstFailure())
	batch := []*model.LogEntry{{Level: "info", ActionType: model.ActionCalculate}}

	assert.ErrorIs(t, repo.InsertBatch(ctx, batch), errMongoDown)
	assert.NoError(t, repo.InsertBatch(ctx, batch))
	assert.Equal(t, 1, inner.batches)
}
