//go:build integration

// Package testutil runs the MongoDB that integration tests share.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	// MongoURIEnv points the tests at an existing MongoDB instead of a container.
	MongoURIEnv = "SALINITY_TEST_MONGODB_URI"
	// MongoImageEnv overrides the container image.
	MongoImageEnv = "SALINITY_TEST_MONGODB_IMAGE"

	defaultMongoImage = "mongo:7.0"
)

// Mongo is a running MongoDB. Stop is a no-op for an external instance.
type Mongo struct {
	URI       string
	container *mongodb.MongoDBContainer
}

// StartMongo starts a MongoDB container, or wraps MongoURIEnv when set.
func StartMongo(ctx context.Context) (*Mongo, error) {
	if uri := os.Getenv(MongoURIEnv); uri != "" {
		return &Mongo{URI: uri}, nil
	}
	image := os.Getenv(MongoImageEnv)
	if image == "" {
		image = defaultMongoImage
	}

	c, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", image, err)
	}
	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}
	return &Mongo{URI: uri, container: c}, nil
}

// Stop terminates the container.
func (m *Mongo) Stop(ctx context.Context) error {
	if m.container == nil {
		return nil
	}
	return m.container.Terminate(ctx)
}

var (
	sharedMu sync.RWMutex
	shared   *Mongo
	dbSeq    atomic.Int64
)

// SetupTestMainWithMongoDB starts the package's shared MongoDB, runs the
// tests and stops it. Use it as os.Exit(testutil.SetupTestMainWithMongoDB(ctx, m)).
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	mongo, err := StartMongo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration MongoDB: %v\n", err)
		return 1
	}
	sharedMu.Lock()
	shared = mongo
	sharedMu.Unlock()

	code := m.Run()

	if err := mongo.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "stop integration MongoDB: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared MongoDB URI. It panics outside a
// package whose TestMain uses SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("testutil: shared MongoDB not started by TestMain")
	}
	return shared.URI
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_")

// SanitizeDBName derives a database name unique to this test run from a
// test name, within MongoDB's 63 byte limit.
func SanitizeDBName(testName string) string {
	name := dbNameReplacer.Replace(testName)
	if len(name) > 48 {
		name = name[:48]
	}
	return fmt.Sprintf("%s_%d_%d", name, os.Getpid()%100000, dbSeq.Add(1))
}
