// Package testutils provides utilities for testing, including Redis test helpers
// and a scripted dice roller.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-roller/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	return CreateTestRedisClientWithContext(t, nil)
}

// CreateTestRedisClientWithContext creates an in-memory Redis client with data population function
func CreateTestRedisClientWithContext(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	mr := StartTestRedis(t, setupFunc)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, cleanup
}

// StartTestRedis runs a miniredis server, lets setupFunc seed it, and
// stops it when the test ends. Tests use it to inspect or corrupt raw keys.
func StartTestRedis(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	if setupFunc != nil {
		setupFunc(mr)
	}
	return mr
}
