// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Amadeus   AmadeusConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Search    SearchConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// AmadeusConfig holds credentials and endpoints for the Amadeus API.
type AmadeusConfig struct {
	BaseURL   string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	APIKey    string        `env:"AMADEUS_API_KEY"`
	APISecret string        `env:"AMADEUS_API_SECRET"`
	Timeout   time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"5s"`
	Currency  string        `env:"AMADEUS_CURRENCY" envDefault:"USD"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	// Backend is one of: memory, postgres, redis.
	Backend     string `env:"CACHE_BACKEND" envDefault:"memory"`
	PostgresURL string `env:"CACHE_POSTGRES_URL"`
	RedisAddr   string `env:"CACHE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int    `env:"CACHE_REDIS_DB" envDefault:"0"`
}

// RateLimitConfig holds the upstream call budgets.
type RateLimitConfig struct {
	PerSecond int `env:"RATE_LIMIT_PER_SECOND" envDefault:"10"`
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100"`
}

// SearchConfig holds search behavior settings.
type SearchConfig struct {
	// DedupeInFlight coalesces concurrent identical queries into one
	// upstream call.
	DedupeInFlight bool `env:"SEARCH_DEDUPE_IN_FLIGHT" envDefault:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}

	// Validate cache backend
	validBackends := map[string]bool{"memory": true, "postgres": true, "redis": true}
	if !validBackends[cfg.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, postgres, redis; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "postgres" && cfg.Cache.PostgresURL == "" {
		return fmt.Errorf("CACHE_POSTGRES_URL is required when CACHE_BACKEND is postgres")
	}

	// Validate rate limit budgets
	if cfg.RateLimit.PerSecond < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must be at least 1, got %d", cfg.RateLimit.PerSecond)
	}
	if cfg.RateLimit.PerMinute < cfg.RateLimit.PerSecond {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE (%d) must be at least RATE_LIMIT_PER_SECOND (%d)",
			cfg.RateLimit.PerMinute, cfg.RateLimit.PerSecond)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
