// Package redis wraps the go-redis client behind a small interface so
// repositories can be tested against miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPingTimeout bounds the reachability check in Ping
const DefaultPingTimeout = 2 * time.Second

// Options configures Redis client behavior. Zero values keep the go-redis
// defaults.
type Options struct {
	PoolSize int
	UseTLS   bool
}

// NewClient creates a Redis client for a single instance. The connection
// is lazy; use Ping to check the server is reachable.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:     endpoint,
		PoolSize: opts.PoolSize,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks the server answers within DefaultPingTimeout
func Ping(ctx context.Context, client Client) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
