package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
)

// runAdapterSuite checks the behaviour every backend shares. newAdapter must
// return an empty store limited to quota bytes.
func runAdapterSuite(t *testing.T, newAdapter func(t *testing.T, quota int64) Adapter) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		a := newAdapter(t, 0)
		_, ok, err := a.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		a := newAdapter(t, 0)
		require.NoError(t, a.Set(ctx, KeyLogs, `[{"id":1}]`))
		v, ok, err := a.Get(ctx, KeyLogs)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":1}]`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		a := newAdapter(t, 0)
		require.NoError(t, a.Set(ctx, KeyEducation, "[1]"))
		require.NoError(t, a.Set(ctx, KeyEducation, "[1,2]"))
		v, _, err := a.Get(ctx, KeyEducation)
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", v)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		a := newAdapter(t, 64)
		err := a.Set(ctx, KeyLogs, strings.Repeat("x", 100))
		assert.ErrorIs(t, err, ErrQuotaExceeded)

		_, ok, err := a.Get(ctx, KeyLogs)
		require.NoError(t, err)
		assert.False(t, ok, "rejected write must not be stored")
	})

	t.Run("quota counts replacement not growth", func(t *testing.T) {
		a := newAdapter(t, 64)
		value := strings.Repeat("y", 40)
		require.NoError(t, a.Set(ctx, "k", value))
		require.NoError(t, a.Set(ctx, "k", value), "rewriting the same size must fit")
	})
}

func TestMemoryAdapter(t *testing.T) {
	runAdapterSuite(t, func(t *testing.T, quota int64) Adapter {
		return NewMemory(quota)
	})
}

func TestMemoryQuota_AcrossKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(30)
	require.NoError(t, m.Set(ctx, "a", strings.Repeat("1", 14)))
	require.NoError(t, m.Set(ctx, "b", strings.Repeat("2", 14)))
	assert.ErrorIs(t, m.Set(ctx, "c", "3"), ErrQuotaExceeded)
}

func TestSQLiteAdapter(t *testing.T) {
	runAdapterSuite(t, func(t *testing.T, quota int64) Adapter {
		s, err := OpenSQLite(context.Background(), ":memory:", quota)
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLiteAdapter_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/portfolio.db"

	s, err := OpenSQLite(ctx, path, 0)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyEducation, `[{"degree":"B.Sc"}]`))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path, 0)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, KeyEducation)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"degree":"B.Sc"}]`, v)
}

func TestRedisAdapter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	runAdapterSuite(t, func(t *testing.T, quota int64) Adapter {
		r, err := NewRedis(ctx, url, quota)
		require.NoError(t, err)
		require.NoError(t, r.rdb.FlushDB(ctx).Err())
		t.Cleanup(func() { r.Close() })
		return r
	})
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	a, err := Open(ctx, config.StorageConfig{Backend: "memory"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, a)

	a, err = Open(ctx, config.StorageConfig{Backend: "sqlite", SQLitePath: ":memory:"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, a)
	a.Close()

	_, err = Open(ctx, config.StorageConfig{Backend: "floppy"}, logger)
	assert.Error(t, err)
}
