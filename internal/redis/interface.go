package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the game state store needs. Both
// *redis.Client and miniredis-backed clients satisfy it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

var _ Client = (*redis.Client)(nil)
