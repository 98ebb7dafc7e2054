package domain

import (
	"context"

	catalog "github.com/tair/inventory-tracker/internal/catalog/domain"
)

// Repository defines the contract for ledger data access
type Repository interface {
	Ledger

	FindBrand(ctx context.Context, id uint) (*catalog.Brand, error)

	CreateStockIn(ctx context.Context, entry *StockIn) error
	FindStockIn(ctx context.Context, id uint) (*StockIn, error)
	UpdateStockIn(ctx context.Context, entry *StockIn) error
	DeleteStockIn(ctx context.Context, id uint) error
	ListStockIn(ctx context.Context, filter EntryFilter) ([]StockInView, error)

	CreateStockOut(ctx context.Context, entry *StockOut) error
	FindStockOut(ctx context.Context, id uint) (*StockOut, error)
	UpdateStockOut(ctx context.Context, entry *StockOut) error
	DeleteStockOut(ctx context.Context, id uint) error
	ListStockOut(ctx context.Context, filter EntryFilter) ([]StockOutView, error)

	// WithinScopes runs fn in one transaction holding row locks on the given
	// brands. fn must only use the repository it is handed.
	WithinScopes(ctx context.Context, brandIDs []uint, fn func(tx Repository) error) error

	ProductTotals(ctx context.Context, productID *uint) ([]ProductStock, error)
	Counts(ctx context.Context) (QuickStats, error)
}
