package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries all runtime settings, loaded from the environment once at
// startup. Adapters receive values from here rather than reading env vars
// themselves.
type Config struct {
	HTTPAddr string

	OneMapBaseURL  string
	OneMapEmail    string
	OneMapPassword string
	OneMapToken    string

	// CacheBackend selects the geocode cache: sqlite, postgres, redis or none.
	CacheBackend string

	SQLitePath  string
	DatabaseURL string
	RedisAddr   string
	CacheTTL    time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:       getEnv("PROFIT_HTTP_ADDR", ":8080"),
		OneMapBaseURL:  getEnv("ONEMAP_BASE_URL", "https://www.onemap.gov.sg"),
		OneMapEmail:    os.Getenv("ONEMAP_EMAIL"),
		OneMapPassword: os.Getenv("ONEMAP_PASSWORD"),
		OneMapToken:    os.Getenv("ONEMAP_TOKEN"),
		CacheBackend:   getEnv("CACHE_BACKEND", "sqlite"),
		SQLitePath:     getEnv("CACHE_SQLITE_PATH", "geocode_cache.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
	}

	ttl, err := getEnvDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = ttl

	switch cfg.CacheBackend {
	case "sqlite", "redis", "none":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("load config: CACHE_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("load config: parse %s: %w", key, err)
	}
	return d, nil
}
