//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/salinity-service/internal/circuitbreaker"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/repository"
	"github.com/guttosm/salinity-service/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongo, err := testutil.StartMongo(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongo.Stop(ctx))
	}()

	t.Run("healthy store keeps the circuit closed", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongo.URI, "test_salinity_profiles")
		require.NoError(t, err)
		defer func() { _ = db.Close(ctx) }()

		cb := circuitbreaker.New(circuitbreaker.Config{Name: "profiles", FailureThreshold: 2, Timeout: time.Hour})
		repo := repository.NewAssumptionProfilesRepositoryWithCircuitBreaker(repository.NewAssumptionProfilesRepository(db), cb)

		_, err = repo.Create(ctx, model.DefaultAssumptions(), "lab")
		require.NoError(t, err)
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, 35.0, active.Assumptions.SalinityNorm)

		assert.True(t, cb.Snapshot().Healthy())
	})

	t.Run("disconnected client trips the circuit", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongo.URI, "test_salinity_calculations")
		require.NoError(t, err)

		cb := circuitbreaker.New(circuitbreaker.Config{Name: "calculations", FailureThreshold: 1, Timeout: time.Hour})
		repo := repository.NewCalculationsRepositoryWithCircuitBreaker(repository.NewCalculationsRepository(db), cb)

		record := &repository.CalculationRecord{
			Inputs:      model.IonMeasurement{Na: 10780, Cl: model.Float(19350)},
			Assumptions: model.DefaultAssumptions(),
			Summary:     model.CalculationSummary{SP: 35, Converged: true},
		}
		require.NoError(t, repo.Create(ctx, record))

		require.NoError(t, db.Close(ctx))
		_, err = repo.GetByID(ctx, record.ID)
		assert.Error(t, err)
		assert.Equal(t, circuitbreaker.StateOpen, cb.State())

		_, err = repo.GetByID(ctx, record.ID)
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}
