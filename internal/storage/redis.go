package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "portfolio:"

// Redis stores keys as plain strings under the portfolio: namespace.
type Redis struct {
	rdb   *redis.Client
	quota int64
}

// NewRedis connects to redisURL and pings it.
func NewRedis(ctx context.Context, redisURL string, quota int64) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb, quota: quota}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, redisPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

// Set enforces the quota per value; redis has no cheap namespace-wide size.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := quotaCheck(r.quota, 0, key, -1, len(value)); err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, redisPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
