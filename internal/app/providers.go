package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cataloghttp "github.com/tair/inventory-tracker/internal/catalog/delivery/http"
	catalogdomain "github.com/tair/inventory-tracker/internal/catalog/domain"
	catalogrepo "github.com/tair/inventory-tracker/internal/catalog/repository"
	catalogcmd "github.com/tair/inventory-tracker/internal/catalog/usecase/command"
	catalogquery "github.com/tair/inventory-tracker/internal/catalog/usecase/query"
	notifyhttp "github.com/tair/inventory-tracker/internal/notify/delivery/http"
	notifycmd "github.com/tair/inventory-tracker/internal/notify/usecase/command"
	stockhttp "github.com/tair/inventory-tracker/internal/stock/delivery/http"
	stockdomain "github.com/tair/inventory-tracker/internal/stock/domain"
	stockrepo "github.com/tair/inventory-tracker/internal/stock/repository"
	stockcmd "github.com/tair/inventory-tracker/internal/stock/usecase/command"
	stockquery "github.com/tair/inventory-tracker/internal/stock/usecase/query"
	userhttp "github.com/tair/inventory-tracker/internal/user/delivery/http"
	userdomain "github.com/tair/inventory-tracker/internal/user/domain"
	userrepo "github.com/tair/inventory-tracker/internal/user/repository"
	usercmd "github.com/tair/inventory-tracker/internal/user/usecase/command"
	userquery "github.com/tair/inventory-tracker/internal/user/usecase/query"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/web"
)

// ProvideTokenManager provides the JWT token manager
func ProvideTokenManager(cfg *config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
}

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewTracingUserRepository(userrepo.NewGormUserRepository(db))
}

// ProvideServiceRepository provides the traced catalog repositories
func ProvideServiceRepository(db *gorm.DB) catalogdomain.ServiceRepository {
	return catalogrepo.NewTracingServiceRepository(catalogrepo.NewGormServiceRepository(db))
}

func ProvideProductRepository(db *gorm.DB) catalogdomain.ProductRepository {
	return catalogrepo.NewTracingProductRepository(catalogrepo.NewGormProductRepository(db))
}

func ProvideBrandRepository(db *gorm.DB) catalogdomain.BrandRepository {
	return catalogrepo.NewTracingBrandRepository(catalogrepo.NewGormBrandRepository(db))
}

// ProvideStockRepository provides the traced ledger repository
func ProvideStockRepository(db *gorm.DB) stockdomain.Repository {
	return stockrepo.NewTracingStockRepository(stockrepo.NewGormStockRepository(db))
}

func ProvideLedger(repo stockdomain.Repository) stockdomain.Ledger {
	return repo
}

func ProvideIdentityResolver(resolver *userquery.IdentityResolver) web.IdentityResolver {
	return resolver
}

// ProvideRateLimiter limits sign-in attempts. Without redis there is no limit.
func ProvideRateLimiter(cfg *config.Config, client *redis.Client) *web.RateLimiter {
	if client == nil {
		return nil
	}
	return web.NewRateLimiter(client, "sign-in", cfg.Redis.SignInLimit, cfg.Redis.SignInWindow)
}

func ProvideStockConfig(cfg *config.Config) config.StockConfig {
	return cfg.Stock
}

func ProvideNotifyConfig(cfg *config.Config) config.NotifyConfig {
	return cfg.Notify
}

// Wire sets
var PlatformSet = wire.NewSet(
	ProvideTokenManager,
	ProvideRateLimiter,
	ProvideStockConfig,
	ProvideNotifyConfig,
	ProvideIdentityResolver,
	web.NewMetrics,
	web.NewAuthenticator,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
)

var UserSet = wire.NewSet(
	ProvideUserRepository,
	usercmd.NewSignInHandler,
	usercmd.NewCreateUserHandler,
	usercmd.NewUpdateUserHandler,
	usercmd.NewChangePasswordHandler,
	usercmd.NewDeleteUserHandler,
	usercmd.NewSeedSuperAdminHandler,
	userquery.NewGetUserHandler,
	userquery.NewListUsersHandler,
	userquery.NewIdentityResolver,
	userhttp.NewUserHandler,
)

var CatalogSet = wire.NewSet(
	ProvideServiceRepository,
	ProvideProductRepository,
	ProvideBrandRepository,
	catalogcmd.NewCreateServiceHandler,
	catalogcmd.NewUpdateServiceHandler,
	catalogcmd.NewDeleteServiceHandler,
	catalogcmd.NewCreateProductHandler,
	catalogcmd.NewUpdateProductHandler,
	catalogcmd.NewDeleteProductHandler,
	catalogcmd.NewCreateBrandHandler,
	catalogcmd.NewUpdateBrandHandler,
	catalogcmd.NewDeleteBrandHandler,
	catalogquery.NewListServicesHandler,
	catalogquery.NewListProductsHandler,
	catalogquery.NewGetProductHandler,
	catalogquery.NewListBrandsHandler,
	wire.Struct(new(cataloghttp.Commands), "*"),
	wire.Struct(new(cataloghttp.Queries), "*"),
	cataloghttp.NewCatalogHandler,
)

var StockSet = wire.NewSet(
	ProvideStockRepository,
	ProvideLedger,
	stockcmd.NewCreateStockInHandler,
	stockcmd.NewUpdateStockInHandler,
	stockcmd.NewDeleteStockInHandler,
	stockcmd.NewCreateStockOutHandler,
	stockcmd.NewUpdateStockOutHandler,
	stockcmd.NewDeleteStockOutHandler,
	stockquery.NewAvailableStockHandler,
	stockquery.NewListStockInHandler,
	stockquery.NewListStockOutHandler,
	stockquery.NewCurrentStockHandler,
	stockquery.NewQuickStatsHandler,
	wire.Struct(new(stockhttp.Commands), "*"),
	wire.Struct(new(stockhttp.Queries), "*"),
	stockhttp.NewStockMetrics,
	stockhttp.NewStockHandler,
)

var NotifySet = wire.NewSet(
	notifycmd.NewSendLowStockAlertHandler,
	notifyhttp.NewNotifyHandler,
)
