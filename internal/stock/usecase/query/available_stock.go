package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// AvailableStockQuery asks for the stock of a product, or of one of its brands
type AvailableStockQuery struct {
	ProductID *uint
	BrandID   *uint
}

// AvailableStockHandler handles available stock query
type AvailableStockHandler struct {
	ledger domain.Ledger
}

// NewAvailableStockHandler creates a new available stock handler
func NewAvailableStockHandler(ledger domain.Ledger) *AvailableStockHandler {
	return &AvailableStockHandler{ledger: ledger}
}

// Handle returns stock in minus stock out, unclamped
func (h *AvailableStockHandler) Handle(ctx context.Context, q AvailableStockQuery) (int64, error) {
	if q.ProductID == nil || *q.ProductID == 0 {
		return 0, apperror.Validation("productId is required")
	}

	scope := domain.Scope{ProductID: *q.ProductID, BrandID: q.BrandID}
	available, err := domain.Available(ctx, h.ledger, scope)
	if err != nil {
		return 0, apperror.Internal(err, "failed to compute available stock")
	}
	return available, nil
}
