package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	_ "github.com/tair/inventory-tracker/docs"
	"github.com/tair/inventory-tracker/internal/app"
	"github.com/tair/inventory-tracker/internal/notify/transport"
	"github.com/tair/inventory-tracker/internal/schema"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/database"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/tracing"
)

// @title Inventory Tracker API
// @version 1.0
// @description Role-gated inventory tracking: services, products, brands, stock ledger and users.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load("inventory-service")
	if err != nil {
		logger.Init("inventory-service", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("notify_transport", cfg.Notify.Transport).
		Msg("Starting inventory service")

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Tracing)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		if err := tracing.Shutdown(context.Background(), tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := schema.Migrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		logger.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("Sign-in rate limiting enabled")
	}

	notifier, closeNotifier, err := transport.NewNotifier(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize notifier")
	}
	defer closeNotifier()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server, err := app.InitializeServer(cfg, db, reg, notifier, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Seed(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed super admin")
	}

	if err := server.Run(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server stopped")
	}
}
