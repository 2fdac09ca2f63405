// Package main is the entry point for the travel search service.
//
//	@title						Travel Search API
//	@version					1.0.0
//	@description				A travel data acquisition service that serves flight, hotel, location, and destination searches live, from cache, or from bundled fallback data.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/wanderly/travel-search-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/wanderly/travel-search-api/docs"

	// Application layers
	"github.com/wanderly/travel-search-api/internal/adapter/amadeus"
	travelhttp "github.com/wanderly/travel-search-api/internal/adapter/http"
	"github.com/wanderly/travel-search-api/internal/adapter/http/middleware"
	"github.com/wanderly/travel-search-api/internal/cache"
	"github.com/wanderly/travel-search-api/internal/cache/memory"
	"github.com/wanderly/travel-search-api/internal/cache/postgres"
	redisstore "github.com/wanderly/travel-search-api/internal/cache/redis"
	"github.com/wanderly/travel-search-api/internal/config"
	"github.com/wanderly/travel-search-api/internal/infrastructure/timeutil"
	"github.com/wanderly/travel-search-api/internal/ratelimit"
	"github.com/wanderly/travel-search-api/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Wire the application layers
	cleanup, err := setupRoutes(e, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes wires the cache backend, rate limiter, upstream client, and
// service, then registers the HTTP routes. The returned cleanup closes any
// backend connections.
func setupRoutes(e *echo.Echo, cfg *config.Config) (func(), error) {
	clock := timeutil.NewRealClock()

	store, cleanup, err := newCacheStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("cache backend %q: %w", cfg.Cache.Backend, err)
	}

	resultCache := cache.New(store, clock, log.Logger)
	limiter := ratelimit.New(cfg.RateLimit.PerSecond, cfg.RateLimit.PerMinute, clock)

	provider := amadeus.NewClient(amadeus.Config{
		BaseURL:   cfg.Amadeus.BaseURL,
		APIKey:    cfg.Amadeus.APIKey,
		APISecret: cfg.Amadeus.APISecret,
		Timeout:   cfg.Amadeus.Timeout,
		Currency:  cfg.Amadeus.Currency,
	}, clock, log.Logger)

	service := usecase.NewTravelSearchService(provider, resultCache, limiter, log.Logger, &usecase.Config{
		DedupeInFlight: cfg.Search.DedupeInFlight,
	})

	handler := travelhttp.NewTravelHandler(service)
	travelhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return cleanup, nil
}

// newCacheStore builds the configured cache store backend.
func newCacheStore(cfg *config.Config) (cache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.Cache.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		store := postgres.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return store, pool.Close, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return redisstore.NewStore(rdb), func() { _ = rdb.Close() }, nil

	default:
		return memory.NewStore(), func() {}, nil
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
