package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	cataloghttp "github.com/tair/inventory-tracker/internal/catalog/delivery/http"
	notifyhttp "github.com/tair/inventory-tracker/internal/notify/delivery/http"
	stockhttp "github.com/tair/inventory-tracker/internal/stock/delivery/http"
	userhttp "github.com/tair/inventory-tracker/internal/user/delivery/http"
	usercmd "github.com/tair/inventory-tracker/internal/user/usecase/command"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/web"
)

// Server is the assembled HTTP surface of the inventory service
type Server struct {
	cfg     *config.Config
	db      *gorm.DB
	handler http.Handler
	seeder  *usercmd.SeedSuperAdminHandler
}

// NewServer registers middlewares and every route on a fresh router
func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	gatherer prometheus.Gatherer,
	users *userhttp.UserHandler,
	catalog *cataloghttp.CatalogHandler,
	stock *stockhttp.StockHandler,
	notify *notifyhttp.NotifyHandler,
	seeder *usercmd.SeedSuperAdminHandler,
) *Server {
	middlewares := web.DefaultMiddlewareConfig(cfg.Server.RequestTimeout)

	router := mux.NewRouter()
	web.RegisterMiddlewares(router, middlewares)

	users.RegisterRoutes(router)
	catalog.RegisterRoutes(router)
	stock.RegisterRoutes(router)
	notify.RegisterRoutes(router)

	s := &Server{cfg: cfg, db: db, seeder: seeder}
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	if cfg.Server.EnableSwagger {
		router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	}

	s.handler = web.SetupCORS(middlewares)(router)
	return s
}

// Handler returns the root handler, CORS included
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Seed creates the configured super admin when no user exists yet
func (s *Server) Seed(ctx context.Context) error {
	created, err := s.seeder.Handle(ctx)
	if err != nil {
		return err
	}
	if created {
		logger.Logger.Info().Str("email", s.cfg.Seed.Email).Msg("Seeded super admin account")
	}
	return nil
}

// health handles GET /health
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Health check failed")
		web.RespondStatus(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	web.RespondJSON(w, http.StatusOK, "Inventory service is healthy", nil)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().
			Str("port", s.cfg.Server.Port).
			Str("metrics_endpoint", "/metrics").
			Bool("swagger", s.cfg.Server.EnableSwagger).
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
