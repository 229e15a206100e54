package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting of the portfolio server.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	SiteURL  string

	ContentPath string

	Storage StorageConfig

	LogCapacity   int
	SlideInterval time.Duration
	ParticleCount int
}

type StorageConfig struct {
	Backend    string // "memory", "sqlite" or "redis"
	SQLitePath string
	RedisURL   string
	QuotaBytes int64
}

// Load reads the configuration from the environment. Values in a .env file
// are already present when the godotenv autoloader runs in main.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		SiteURL:     getenv("SITE_URL", "http://localhost:8080/"),
		ContentPath: getenv("CONTENT_PATH", "content/site.yaml"),
		Storage: StorageConfig{
			Backend:    getenv("STORAGE_BACKEND", "memory"),
			SQLitePath: getenv("SQLITE_PATH", "portfolio.db"),
			RedisURL:   getenv("REDIS_URL", "redis://localhost:6379/0"),
		},
	}

	var err error
	if cfg.Storage.QuotaBytes, err = int64Env("STORAGE_QUOTA_BYTES", 5<<20); err != nil {
		return nil, err
	}
	if cfg.LogCapacity, err = intEnv("LOG_CAPACITY", 100); err != nil {
		return nil, err
	}
	if cfg.ParticleCount, err = intEnv("PARTICLE_COUNT", 50); err != nil {
		return nil, err
	}
	if cfg.SlideInterval, err = durationEnv("SLIDE_INTERVAL", 5*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}
	if c.LogCapacity <= 0 {
		return fmt.Errorf("LOG_CAPACITY must be positive, got %d", c.LogCapacity)
	}
	if c.ParticleCount < 0 {
		return fmt.Errorf("PARTICLE_COUNT must not be negative, got %d", c.ParticleCount)
	}
	if c.SlideInterval <= 0 {
		return fmt.Errorf("SLIDE_INTERVAL must be positive, got %s", c.SlideInterval)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func int64Env(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
