package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/elearn-admin-gateway/internal/api"
	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/client"
	"github.com/elearn-admin-gateway/internal/config"
	"github.com/elearn-admin-gateway/internal/service"
	"github.com/elearn-admin-gateway/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting elearn admin gateway...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Backend service clients
	users := client.NewUserClient(cfg.Services.UserServiceURL, cfg.Services.RequestTimeout)
	times := client.NewTimeClient(cfg.Services.TimeServiceURL, cfg.Services.RequestTimeout)
	library := client.NewLibraryClient(cfg.Services.LibraryServiceURL, cfg.Services.RequestTimeout, cfg.Services.UploadTimeout)
	log.Info().
		Str("user_svc", cfg.Services.UserServiceURL).
		Str("time_svc", cfg.Services.TimeServiceURL).
		Str("library_svc", cfg.Services.LibraryServiceURL).
		Msg("Backend clients configured")

	// Optional redis-backed login rate limiter
	var limiter *api.RateLimiter
	if cfg.RateLimit.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RateLimit.RedisAddr).Msg("Redis unreachable, login rate limiting disabled")
		} else {
			limiter = api.NewRateLimiter(rdb)
			log.Info().Str("addr", cfg.RateLimit.RedisAddr).Msg("Login rate limiter enabled")
		}
	}

	// Initialize services
	services := service.NewServices(users, times, library, cfg, log)

	// Token verifier shared with the user service
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	// Initialize router
	router := api.NewRouter(services, cfg, verifier, limiter, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
