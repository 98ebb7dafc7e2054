package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/config"
)

// CurrentStockQuery represents the query for the current stock report
type CurrentStockQuery struct {
	Actor     *access.Identity
	ProductID *uint
}

// CurrentStockHandler handles current stock query
type CurrentStockHandler struct {
	repo      domain.Repository
	threshold int64
}

// NewCurrentStockHandler creates a new current stock handler
func NewCurrentStockHandler(repo domain.Repository, cfg config.StockConfig) *CurrentStockHandler {
	return &CurrentStockHandler{repo: repo, threshold: cfg.LowStockThreshold}
}

// Handle executes the current stock query
func (h *CurrentStockHandler) Handle(ctx context.Context, q CurrentStockQuery) ([]domain.ProductStock, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	rows, err := h.repo.ProductTotals(ctx, q.ProductID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to compute current stock")
	}
	if rows == nil {
		rows = []domain.ProductStock{}
	}
	for i := range rows {
		rows[i].LowStock = rows[i].CurrentStock <= h.threshold
	}
	return rows, nil
}

// QuickStatsQuery represents the query for dashboard counters
type QuickStatsQuery struct {
	Actor *access.Identity
}

// QuickStatsHandler handles quick stats query
type QuickStatsHandler struct {
	repo      domain.Repository
	threshold int64
}

// NewQuickStatsHandler creates a new quick stats handler
func NewQuickStatsHandler(repo domain.Repository, cfg config.StockConfig) *QuickStatsHandler {
	return &QuickStatsHandler{repo: repo, threshold: cfg.LowStockThreshold}
}

// Handle executes the quick stats query
func (h *QuickStatsHandler) Handle(ctx context.Context, q QuickStatsQuery) (*domain.QuickStats, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	stats, err := h.repo.Counts(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to count inventory")
	}
	rows, err := h.repo.ProductTotals(ctx, nil)
	if err != nil {
		return nil, apperror.Internal(err, "failed to compute current stock")
	}
	for _, row := range rows {
		if row.CurrentStock <= h.threshold {
			stats.LowStockCount++
		}
	}
	stats.LowStockThreshold = h.threshold
	return &stats, nil
}
