// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := CreateTestRedisServer(t)
	return client, mr.Close
}

// CreateTestRedisServer creates an in-memory Redis client and also returns the
// backing server so tests can inspect keys or fast-forward TTLs.
// The server is closed when the test finishes.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	})

	return client, mr
}
