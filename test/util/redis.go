package util

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/agentloom/loom/pkg/bus"
)

var (
	sharedRedisAddr string
	redisOnce       sync.Once
	redisErr        error
)

// redisDBCounter hands out distinct logical DBs so parallel tests in one
// package do not see each other's keys. Redis ships 16 by default.
var (
	redisDBMu      sync.Mutex
	redisDBCounter int
)

// NewTestBus returns a Bus backed by a dedicated logical database on the
// shared Redis instance. In CI it connects to CI_REDIS_ADDR; locally it
// starts one testcontainer per package.
func NewTestBus(t *testing.T) *bus.Bus {
	t.Helper()

	addr := getOrCreateSharedRedis(t)

	redisDBMu.Lock()
	db := redisDBCounter % 16
	redisDBCounter++
	redisDBMu.Unlock()

	rdb := goredis.NewClient(&goredis.Options{Addr: addr, DB: db})
	require.NoError(t, rdb.FlushDB(context.Background()).Err())

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	b := bus.NewFromClient(rdb, logger)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func getOrCreateSharedRedis(t *testing.T) string {
	if addr := os.Getenv("CI_REDIS_ADDR"); addr != "" {
		t.Log("Using external Redis from CI_REDIS_ADDR")
		return addr
	}

	redisOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared Redis testcontainer for all tests")

		container, err := tcredis.Run(ctx, "redis:7-alpine")
		if err != nil {
			redisErr = fmt.Errorf("failed to start redis container: %w", err)
			return
		}
		endpoint, err := container.Endpoint(ctx, "")
		if err != nil {
			redisErr = fmt.Errorf("failed to get redis endpoint: %w", err)
			return
		}
		sharedRedisAddr = endpoint
		t.Logf("Shared redis container ready: %s", sharedRedisAddr)
	})

	require.NoError(t, redisErr, "Failed to setup shared redis container")
	return sharedRedisAddr
}
