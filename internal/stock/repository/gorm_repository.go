package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalog "github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/internal/stock/domain"
)

// GormStockRepository implements domain.Repository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) SumStockIn(ctx context.Context, scope domain.Scope) (int64, error) {
	return r.sum(ctx, "stock_ins", scope)
}

func (r *GormStockRepository) SumStockOut(ctx context.Context, scope domain.Scope) (int64, error) {
	return r.sum(ctx, "stock_outs", scope)
}

func (r *GormStockRepository) sum(ctx context.Context, table string, scope domain.Scope) (int64, error) {
	query := r.db.WithContext(ctx).Table(table).Select("COALESCE(SUM(quantity), 0)")
	if scope.ProductID != 0 {
		query = query.Where("product_id = ?", scope.ProductID)
	}
	if scope.BrandID != nil {
		query = query.Where("brand_id = ?", *scope.BrandID)
	}

	var total int64
	if err := query.Row().Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum %s: %w", table, err)
	}
	return total, nil
}

func (r *GormStockRepository) FindBrand(ctx context.Context, id uint) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}
	return &brand, nil
}

func (r *GormStockRepository) CreateStockIn(ctx context.Context, entry *domain.StockIn) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create stock in: %w", err)
	}
	return nil
}

func (r *GormStockRepository) FindStockIn(ctx context.Context, id uint) (*domain.StockIn, error) {
	var entry domain.StockIn
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStockInNotFound
		}
		return nil, fmt.Errorf("failed to find stock in: %w", err)
	}
	return &entry, nil
}

func (r *GormStockRepository) UpdateStockIn(ctx context.Context, entry *domain.StockIn) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update stock in: %w", err)
	}
	return nil
}

func (r *GormStockRepository) DeleteStockIn(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.StockIn{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete stock in: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStockInNotFound
	}
	return nil
}

func (r *GormStockRepository) ListStockIn(ctx context.Context, filter domain.EntryFilter) ([]domain.StockInView, error) {
	var views []domain.StockInView
	query := r.entries(ctx, "stock_ins", "e.price_per_unit", filter)
	if err := query.Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock in: %w", err)
	}
	for i := range views {
		views[i].TotalPrice = views[i].PricePerUnit.Mul(decimal.NewFromInt(views[i].Quantity))
	}
	return views, nil
}

func (r *GormStockRepository) CreateStockOut(ctx context.Context, entry *domain.StockOut) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create stock out: %w", err)
	}
	return nil
}

func (r *GormStockRepository) FindStockOut(ctx context.Context, id uint) (*domain.StockOut, error) {
	var entry domain.StockOut
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStockOutNotFound
		}
		return nil, fmt.Errorf("failed to find stock out: %w", err)
	}
	return &entry, nil
}

func (r *GormStockRepository) UpdateStockOut(ctx context.Context, entry *domain.StockOut) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update stock out: %w", err)
	}
	return nil
}

func (r *GormStockRepository) DeleteStockOut(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.StockOut{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete stock out: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStockOutNotFound
	}
	return nil
}

func (r *GormStockRepository) ListStockOut(ctx context.Context, filter domain.EntryFilter) ([]domain.StockOutView, error) {
	var views []domain.StockOutView
	if err := r.entries(ctx, "stock_outs", "", filter).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock out: %w", err)
	}
	return views, nil
}

// entries builds the denormalised listing query shared by both ledgers, newest first.
func (r *GormStockRepository) entries(ctx context.Context, table, extra string, filter domain.EntryFilter) *gorm.DB {
	columns := `e.id, e.product_id, e.brand_id, e.quantity, e.comments, e.created_by_id, e.created_at, e.updated_at,
		COALESCE(p.name, '') AS product_name,
		COALESCE(b.name, '') AS brand_name,
		COALESCE(u.username, '') AS created_by_name`
	if extra != "" {
		columns += ", " + extra
	}

	query := r.db.WithContext(ctx).
		Table(table + " AS e").
		Select(columns).
		Joins("LEFT JOIN products p ON p.id = e.product_id").
		Joins("LEFT JOIN brands b ON b.id = e.brand_id").
		Joins("LEFT JOIN users u ON u.id = e.created_by_id")
	if filter.ProductID != nil {
		query = query.Where("e.product_id = ?", *filter.ProductID)
	}
	if filter.BrandID != nil {
		query = query.Where("e.brand_id = ?", *filter.BrandID)
	}
	return query.Order("e.created_at DESC").Order("e.id DESC")
}

// WithinScopes locks the brand rows in id order so concurrent writers on
// overlapping scopes queue instead of deadlocking.
func (r *GormStockRepository) WithinScopes(ctx context.Context, brandIDs []uint, fn func(tx domain.Repository) error) error {
	ids := uniqueSorted(brandIDs)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var locked []catalog.Brand
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id IN ?", ids).
				Order("id").
				Find(&locked).Error
			if err != nil {
				return fmt.Errorf("failed to lock brands: %w", err)
			}
		}
		return fn(NewGormStockRepository(tx))
	})
}

func (r *GormStockRepository) ProductTotals(ctx context.Context, productID *uint) ([]domain.ProductStock, error) {
	var rows []domain.ProductStock
	query := r.db.WithContext(ctx).
		Table("products AS p").
		Select(`p.id AS product_id, p.name AS product_name, p.service_id,
			COALESCE(s.name, '') AS service_name,
			COALESCE((SELECT SUM(si.quantity) FROM stock_ins si WHERE si.product_id = p.id), 0) AS total_stock_in,
			COALESCE((SELECT SUM(so.quantity) FROM stock_outs so WHERE so.product_id = p.id), 0) AS total_stock_out`).
		Joins("LEFT JOIN services s ON s.id = p.service_id")
	if productID != nil {
		query = query.Where("p.id = ?", *productID)
	}

	if err := query.Order("p.name ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to compute product totals: %w", err)
	}
	for i := range rows {
		rows[i].CurrentStock = rows[i].TotalStockIn - rows[i].TotalStockOut
	}
	return rows, nil
}

func (r *GormStockRepository) Counts(ctx context.Context) (domain.QuickStats, error) {
	var stats domain.QuickStats
	counts := []struct {
		table string
		dst   *int64
	}{
		{"services", &stats.TotalServices},
		{"products", &stats.TotalProducts},
		{"stock_ins", &stats.TotalStockInEntries},
		{"stock_outs", &stats.TotalStockOutEntries},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Table(c.table).Count(c.dst).Error; err != nil {
			return stats, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	var err error
	if stats.TotalStockInQuantity, err = r.SumStockIn(ctx, domain.Scope{}); err != nil {
		return stats, err
	}
	if stats.TotalStockOutQuantity, err = r.SumStockOut(ctx, domain.Scope{}); err != nil {
		return stats, err
	}
	stats.CurrentStock = stats.TotalStockInQuantity - stats.TotalStockOutQuantity
	return stats, nil
}

func uniqueSorted(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
