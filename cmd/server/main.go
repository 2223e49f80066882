package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/themobileprof/medicare-be/internal/api"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/config"
	"github.com/themobileprof/medicare-be/internal/consultation"
	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/logger"
	"github.com/themobileprof/medicare-be/internal/metrics"
	"github.com/themobileprof/medicare-be/internal/symptoms"
	"github.com/themobileprof/medicare-be/internal/ws"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logger.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	database, err := db.New(db.Config{
		URL:             cfg.Database.URL,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxConnections:  cfg.Database.MaxConnections,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	zlog.Info("database connected")

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(); err != nil {
			zlog.Fatal("failed to run migrations", zap.Error(err))
		}
		zlog.Info("migrations applied")
	}

	// Initialize components
	resolver := symptoms.NewDefaultResolver()
	consultations := consultation.NewService(resolver, database, zlog)

	ipLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	userLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	done := make(chan struct{})
	go ipLimiter.RunSweeper(done)
	go userLimiter.RunSweeper(done)

	consultHandler := ws.NewConsultHandler(
		consultations,
		cfg.Server.AllowedOrigins,
		cfg.RateLimit.WSMessagesPerMinute,
		zlog,
	)

	var metricsHandler http.Handler
	if cfg.Server.MetricsEnabled {
		metricsHandler = metrics.Handler(database, zlog)
	}

	router := api.NewRouter(api.RouterConfig{
		DB:             database,
		Consultations:  consultations,
		Logger:         zlog,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		IPLimiter:      ipLimiter,
		UserLimiter:    userLimiter,
		WSConsult:      consultHandler.HandleConsult,
		Metrics:        metricsHandler,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		zlog.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.Int("symptom_entries", len(resolver.Entries())),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	close(done)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
