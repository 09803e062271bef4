// Package config centralizes the environment-variable settings shared
// by the cache, catalog, telemetry, and command-line components. The
// solver core (internal/puzzle, internal/solver) takes no
// configuration at all; only the collaborators wired around it do.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
)

const (
	redisURLEnvVar    = "REDIS_URL"
	postgresDSNEnvVar = "DATABASE_URL"
	metricsAddrEnvVar = "METRICS_ADDR"
	serveAddrEnvVar   = "SERVE_ADDR"

	defaultRedisURL    = "redis://localhost:6379/"
	defaultPostgresDSN = "postgres://localhost:5432/rushhour?sslmode=disable"
	defaultMetricsAddr = ":9090"
	defaultServeAddr   = ":8080"
)

// Config holds every environment-derived setting the out-of-core
// collaborators need. The zero value is not valid; use Load.
type Config struct {
	RedisURL    string `validate:"required,uri"`
	PostgresDSN string `validate:"required"`
	MetricsAddr string `validate:"required"`
	ServeAddr   string `validate:"required"`
}

var validate = validator.New()

// Load reads settings from the environment, falling back to
// defaults suitable for a local development instance, and validates
// the result.
func Load() (Config, error) {
	cfg := Config{
		RedisURL:    getenv(redisURLEnvVar, defaultRedisURL),
		PostgresDSN: getenv(postgresDSNEnvVar, defaultPostgresDSN),
		MetricsAddr: getenv(metricsAddrEnvVar, defaultMetricsAddr),
		ServeAddr:   getenv(serveAddrEnvVar, defaultServeAddr),
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
