//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

func TestCalculationsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)

	repo := NewCalculationsRepository(db)
	older := time.Now().Add(-time.Hour).UTC().Truncate(time.Millisecond)

	first := &CalculationRecord{
		Fingerprint: "a",
		Inputs:      model.IonMeasurement{Na: 11980, Cl: model.Float(19570)},
		Assumptions: model.DefaultAssumptions(),
		Summary:     model.CalculationSummary{SP: 35.2, Converged: true},
		RequestID:   "req-1",
		CreatedAt:   older,
	}
	second := &CalculationRecord{
		Fingerprint: "b",
		Inputs:      model.IonMeasurement{Na: 10000},
		Assumptions: model.DefaultAssumptions(),
		Summary:     model.CalculationSummary{SP: 30.1, Converged: true},
	}

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))
		assert.False(t, second.ID.IsZero())
		assert.False(t, second.CreatedAt.IsZero())
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "req-1", got.RequestID)
		require.NotNil(t, got.Inputs.Cl)
		assert.Equal(t, 19570.0, *got.Inputs.Cl)
		assert.Equal(t, first.Summary, got.Summary)
	})

	t.Run("get by id not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, [12]byte{9})
		assert.ErrorIs(t, err, ErrCalculationNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		records, err := repo.List(ctx, CalculationQueryOptions{Limit: 10})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, second.ID, records[0].ID)
	})

	t.Run("list since filters older records", func(t *testing.T) {
		since := older.Add(time.Minute)
		records, err := repo.List(ctx, CalculationQueryOptions{Since: &since})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, second.ID, records[0].ID)

		count, err := repo.Count(ctx, CalculationQueryOptions{Since: &since})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
