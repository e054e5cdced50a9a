//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("indexes created", func(t *testing.T) {
		names, err := db.Database.ListCollectionNames(ctx, bson.M{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{AssumptionProfilesCollection, CalculationsCollection, LogsCollection}, names)

		specs, err := db.AssumptionProfiles.Indexes().ListSpecifications(ctx)
		require.NoError(t, err)
		var got []string
		for _, s := range specs {
			got = append(got, s.Name)
		}
		assert.Contains(t, got, "version_-1")
	})

	t.Run("rejects a sub-day ttl", func(t *testing.T) {
		assert.Error(t, db.SetLogsTTL(ctx, 0))
	})

	t.Run("bad uri fails fast", func(t *testing.T) {
		cfg := DefaultMongoConfig()
		cfg.ServerSelectionTimeout = 200 * time.Millisecond
		cfg.ConnectTimeout = 500 * time.Millisecond
		_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
		assert.Error(t, err)
	})
}
