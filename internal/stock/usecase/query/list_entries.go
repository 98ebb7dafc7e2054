package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListEntriesQuery lists ledger entries, newest first
type ListEntriesQuery struct {
	Actor  *access.Identity
	Filter domain.EntryFilter
}

// ListStockInHandler handles list stock in query
type ListStockInHandler struct {
	repo domain.Repository
}

// NewListStockInHandler creates a new list stock in handler
func NewListStockInHandler(repo domain.Repository) *ListStockInHandler {
	return &ListStockInHandler{repo: repo}
}

// Handle executes the list stock in query
func (h *ListStockInHandler) Handle(ctx context.Context, q ListEntriesQuery) ([]domain.StockInView, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	entries, err := h.repo.ListStockIn(ctx, q.Filter)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list stock in")
	}
	if entries == nil {
		entries = []domain.StockInView{}
	}
	return entries, nil
}

// ListStockOutHandler handles list stock out query
type ListStockOutHandler struct {
	repo domain.Repository
}

// NewListStockOutHandler creates a new list stock out handler
func NewListStockOutHandler(repo domain.Repository) *ListStockOutHandler {
	return &ListStockOutHandler{repo: repo}
}

// Handle executes the list stock out query
func (h *ListStockOutHandler) Handle(ctx context.Context, q ListEntriesQuery) ([]domain.StockOutView, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	entries, err := h.repo.ListStockOut(ctx, q.Filter)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list stock out")
	}
	if entries == nil {
		entries = []domain.StockOutView{}
	}
	return entries, nil
}
