// Package storage is the key-value store the page state is mirrored to.
//
// It plays the part of the browser's local storage: string keys, string
// values, and writes that may fail once a quota is exhausted. Callers own
// disjoint keys.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
)

var (
	// ErrQuotaExceeded is returned by Set when the write would exceed the
	// configured storage quota.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrSerialization marks values that could not be encoded for storage.
	ErrSerialization = errors.New("storage serialization failed")
)

// Fixed keys used by the page components.
const (
	KeyLogs      = "portfolio_logs"
	KeyEducation = "portfolio_education"
)

// Adapter is a string key-value store.
type Adapter interface {
	// Get returns the stored value. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the adapter selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Adapter, error) {
	switch cfg.Backend {
	case "", "memory":
		logger.Info("Using in-memory storage", zap.Int64("quota_bytes", cfg.QuotaBytes))
		return NewMemory(cfg.QuotaBytes), nil
	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.SQLitePath, cfg.QuotaBytes)
		if err != nil {
			return nil, err
		}
		logger.Info("SQLite storage opened", zap.String("path", cfg.SQLitePath))
		return s, nil
	case "redis":
		r, err := NewRedis(ctx, cfg.RedisURL, cfg.QuotaBytes)
		if err != nil {
			return nil, err
		}
		logger.Info("Redis storage connected")
		return r, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// quotaCheck reports ErrQuotaExceeded when replacing a value of size oldLen
// by one of size newLen pushes used past quota. oldLen is negative for a new
// key. A quota <= 0 means unlimited.
func quotaCheck(quota, used int64, key string, oldLen, newLen int) error {
	if quota <= 0 {
		return nil
	}
	next := used + int64(len(key)+newLen)
	if oldLen >= 0 {
		next -= int64(len(key) + oldLen)
	}
	if next > quota {
		return fmt.Errorf("set %s (%d bytes): %w", key, newLen, ErrQuotaExceeded)
	}
	return nil
}
