package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:chat:"

// Redis counts requests in fixed one-minute windows shared by every instance
// of the server.
type Redis struct {
	rdb       *redis.Client
	perMinute int
	window    time.Duration
	now       func() time.Time
}

func NewRedis(rdb *redis.Client, perMinute int) *Redis {
	if perMinute <= 0 {
		perMinute = 1
	}

	return &Redis{
		rdb:       rdb,
		perMinute: perMinute,
		window:    time.Minute,
		now:       time.Now,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := r.now().Truncate(r.window).Unix()
	counterKey := fmt.Sprintf("%s%s:%d", keyPrefix, key, windowStart)

	pipe := r.rdb.TxPipeline()
	count := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return count.Val() <= int64(r.perMinute), nil
}
