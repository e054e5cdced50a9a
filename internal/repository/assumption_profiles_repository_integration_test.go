//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

func TestAssumptionProfilesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)

	repo := NewAssumptionProfilesRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("create profile", func(t *testing.T) {
		a := model.DefaultAssumptions()
		a.RNCompat = true
		profile, err := repo.Create(ctx, a, "test-user")
		require.NoError(t, err)
		assert.True(t, profile.Active)
		assert.Equal(t, 1, profile.Version)
		assert.Equal(t, "test-user", profile.CreatedBy)
		assert.False(t, profile.ID.IsZero())
	})

	t.Run("get active round-trips assumptions", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.True(t, active.Assumptions.RNCompat)
		require.NotNil(t, active.Assumptions.RefAlkDKH)
		assert.Equal(t, model.DefaultRefAlkDKH, *active.Assumptions.RefAlkDKH)
		assert.Nil(t, active.Assumptions.BorateFraction)
	})

	t.Run("create new active deactivates old", func(t *testing.T) {
		old, err := repo.GetActive(ctx)
		require.NoError(t, err)

		a := model.DefaultAssumptions()
		a.Temp = 26
		created, err := repo.Create(ctx, a, "test-user-2")
		require.NoError(t, err)
		assert.Equal(t, old.Version+1, created.Version)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, created.ID, active.ID)
		assert.Equal(t, 26.0, active.Assumptions.Temp)
	})

	t.Run("list newest first", func(t *testing.T) {
		profiles, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.True(t, profiles[0].Active)
		assert.False(t, profiles[1].Active)

		limited, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}
