// Package redis implements shared infrastructure backed by Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// Limiter is a fixed-window request counter shared by every server
// instance. Each key gets one counter per wall-clock minute.
type Limiter struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewLimiter creates a Limiter storing its counters under prefix.
func NewLimiter(client *goredis.Client, prefix string) *Limiter {
	return &Limiter{client: client, prefix: prefix, now: time.Now}
}

// Allow increments the counter of key for the current window and reports
// whether it is still within perMinute.
func (l *Limiter) Allow(ctx context.Context, key string, perMinute int) (bool, error) {
	slot := l.now().Unix() / int64(window.Seconds())
	counterKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, counterKey)
		pipe.Expire(ctx, counterKey, 2*window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}

	return incr.Val() <= int64(perMinute), nil
}

// Ping reports whether the counter store is reachable.
func (l *Limiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
