//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisContainer is a running redis instance with a connected client, used by
// the rate limiter integration suite.
type RedisContainer struct {
	Container testcontainers.Container
	Addr      string
	Client    *redis.Client
}

// NewRedisContainer starts redis and connects a verified client. The
// container is shared through the singleton Manager, so cleanup is left to
// Ryuk rather than t.Cleanup.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	fatal := func(stage string, err error) {
		_ = container.Terminate(ctx)
		t.Fatalf("%s: %v", stage, err)
	}

	addr, err := container.ConnectionString(ctx)
	if err != nil {
		fatal("redis connection string", err)
	}
	opts, err := redis.ParseURL(addr)
	if err != nil {
		fatal("parse redis URL", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		fatal("ping redis", err)
	}

	return &RedisContainer{Container: container, Addr: addr, Client: client}
}

// FlushAll removes all keys. Call between tests for isolation.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
