package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bank_account_manager/internal/adapters/events"
	"github.com/SscSPs/bank_account_manager/internal/adapters/memory"
	portsrepo "github.com/SscSPs/bank_account_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bank_account_manager/internal/core/services"
	"github.com/SscSPs/bank_account_manager/internal/handlers"
	"github.com/SscSPs/bank_account_manager/internal/middleware"
	"github.com/SscSPs/bank_account_manager/internal/platform/config"
	"github.com/SscSPs/bank_account_manager/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Bank Account Manager API
// @version 1.0
// @description Savings, current and fixed deposit accounts with transaction history.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	publisher, closePublisher := newEventPublisher(ctx, cfg, logger)
	defer closePublisher()

	repos := portsrepo.RepositoryProvider{
		AccountRepo: memory.NewAccountRegistry(),
		Events:      publisher,
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, nil)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.RateLimit(rateLimiter), middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// newEventPublisher connects to Redis when an address is configured and falls
// back to a logging no-op publisher otherwise.
func newEventPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.EventPublisher, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("Redis address not set, account events will only be logged")
		return events.NoopPublisher{Logger: logger}, func() {}
	}

	client, err := events.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("Redis unavailable, account events will only be logged", slog.String("error", err.Error()))
		return events.NoopPublisher{Logger: logger}, func() {}
	}

	logger.Info("Publishing account events", slog.String("addr", cfg.RedisAddr), slog.String("stream", cfg.RedisStream))
	return events.NewRedisPublisher(client, cfg.RedisStream), func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Redis client", slog.String("error", err.Error()))
		}
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = append(c.AllowHeaders, "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	if cfg.FrontendBaseURL == "" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = []string{cfg.FrontendBaseURL}
	}
	return c
}
