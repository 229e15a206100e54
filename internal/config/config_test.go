package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "LOG_CAPACITY", "SLIDE_INTERVAL", "PARTICLE_COUNT", "STORAGE_QUOTA_BYTES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 100, cfg.LogCapacity)
	assert.Equal(t, 50, cfg.ParticleCount)
	assert.Equal(t, 5*time.Second, cfg.SlideInterval)
	assert.Equal(t, int64(5<<20), cfg.Storage.QuotaBytes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/p.db")
	t.Setenv("LOG_CAPACITY", "10")
	t.Setenv("SLIDE_INTERVAL", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/p.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 10, cfg.LogCapacity)
	assert.Equal(t, 2*time.Second, cfg.SlideInterval)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"unknown backend":   {"STORAGE_BACKEND", "etcd"},
		"bad capacity":      {"LOG_CAPACITY", "lots"},
		"zero capacity":     {"LOG_CAPACITY", "0"},
		"bad interval":      {"SLIDE_INTERVAL", "soon"},
		"negative particle": {"PARTICLE_COUNT", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
