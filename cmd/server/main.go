package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/repository"
	"github.com/mergington/activities/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the in-memory registry. State is memory-resident only and is
	// rebuilt from the catalog on every start.
	activityRepo := repository.NewActivityRepository(service.DefaultActivities())

	slog.Info("registry seeded", slog.Int("activities", len(service.DefaultActivities())))

	// Initialize services
	activityService := service.NewActivityService(service.ActivityServiceConfig{
		Repo: activityRepo,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Limit:    cfg.RateLimit.Limit,
		Interval: cfg.RateLimit.Interval,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Prometheus metrics endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Activity registry endpoints
	mux.HandleFunc("GET /activities", activityHandler.List)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityHandler.Signup)
	mux.HandleFunc("POST /activities/{activityName}/unregister", activityHandler.Unregister)

	// Landing page
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Server.StaticDir))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Metrics,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
