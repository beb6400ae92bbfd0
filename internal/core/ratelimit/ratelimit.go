// Package ratelimit provides the per-client sliding window behind the API
// rate limit middleware. The redis-backed limiter shares the window across
// instances; the local limiter approximates it with per-client token buckets
// when no redis is configured.
package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RedisLimiter struct {
	RDB    *redis.Client
	Window time.Duration
	Max    int64
}

func NewRedis(addr, pass string, db int, window time.Duration, max int64) *RedisLimiter {
	return &RedisLimiter{
		RDB:    redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		Window: window,
		Max:    max,
	}
}

// Allow prunes entries older than the window, then admits the request only if
// the remaining count is below the cap.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	cutoff := strconv.FormatInt(now.Add(-l.Window).UnixNano(), 10)

	var card *redis.IntCmd
	_, err := l.RDB.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, key, "0", cutoff)
		card = p.ZCard(ctx, key)
		return nil
	})
	if err != nil {
		return false, err
	}
	if card.Val() >= l.Max {
		return false, nil
	}

	_, err = l.RDB.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, key, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: now.UnixNano(),
		})
		p.Expire(ctx, key, l.Window)
		return nil
	})
	return true, err
}

type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func NewLocal(window time.Duration, max int64) *LocalLimiter {
	return &LocalLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(float64(max) / window.Seconds()),
		burst:   int(max),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	lim, ok := l.buckets[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.buckets[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow(), nil
}
