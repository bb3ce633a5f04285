package ratelimit

import (
	"context"
	"time"

	"neuraledge/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Redis is a limiter backed by a shared redis, suitable for multi-replica deployments.
// On redis failure it fails open so a degraded cache never blocks submissions
type Redis struct {
	rdb    redis.UniversalClient
	window time.Duration
	prefix string
}

// NewRedis builds a Redis limiter with the given window
func NewRedis(rdb redis.UniversalClient, window time.Duration) *Redis {
	return &Redis{rdb: rdb, window: window, prefix: "ratelimit:"}
}

// CheckAndRecord sets the key NX with the window TTL. An existing key means
// the caller is inside the window and PTTL provides the remaining wait
func (r *Redis) CheckAndRecord(ctx context.Context, key string) (Decision, error) {
	k := r.prefix + key

	ok, err := r.rdb.SetNX(ctx, k, 1, r.window).Result()
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("redis limiter unavailable, failing open")
		return Decision{Allowed: true}, nil
	}
	if ok {
		return Decision{Allowed: true}, nil
	}

	wait, err := r.rdb.PTTL(ctx, k).Result()
	if err != nil || wait <= 0 {
		wait = r.window
	}
	return Decision{Allowed: false, RetryAfter: wait}, nil
}
