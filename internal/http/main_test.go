//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/salinity-service/internal/testutil"
)

// TestMain shares one MongoDB container across the package; each test gets
// its own database named after the test.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
