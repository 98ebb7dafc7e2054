//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notifydomain "github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/pkg/config"
)

// InitializeServer wires every handler of the inventory service
func InitializeServer(cfg *config.Config, db *gorm.DB, reg *prometheus.Registry, notifier notifydomain.Notifier, redisClient *redis.Client) (*Server, error) {
	wire.Build(
		PlatformSet,
		UserSet,
		CatalogSet,
		StockSet,
		NotifySet,
		NewServer,
	)
	return nil, nil
}
