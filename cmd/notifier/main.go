package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tair/inventory-tracker/internal/notify/transport"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/tracing"
)

// notifier consumes low stock alerts from Kafka and emails them over SMTP.
func main() {
	cfg, err := config.Load("inventory-notifier")
	if err != nil {
		logger.Init("inventory-notifier", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Tracing)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		if err := tracing.Shutdown(context.Background(), tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	email, err := transport.NewEmailNotifier(cfg.SMTP)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize SMTP client")
	}

	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.AlertTopic})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeLowStockAlert, transport.AlertEventHandler(email))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Logger.Info().
		Strs("brokers", cfg.Kafka.Brokers).
		Str("topic", cfg.Kafka.AlertTopic).
		Str("group_id", cfg.Kafka.GroupID).
		Msg("Notifier started")

	consumer.Start(ctx)

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down notifier...")
}
