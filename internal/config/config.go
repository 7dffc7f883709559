package config

import (
	"os"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port           string
	Env            string // development | production
	DevMode        bool   // run with in-memory store and no order sink
	RedisURL       string
	MongoURI       string
	MongoDB        string
	CatalogTimeout time.Duration
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Port:           getenv("APP_PORT", "8080"),
		Env:            getenv("APP_ENV", "development"),
		RedisURL:       getenv("REDIS_URL", "redis://localhost:6379"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "jastip"),
		CatalogTimeout: 15 * time.Second,
	}

	if v := os.Getenv("DEV_MODE"); v == "1" || strings.ToLower(v) == "true" {
		cfg.DevMode = true
	}
	if v := os.Getenv("CATALOG_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CatalogTimeout = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
