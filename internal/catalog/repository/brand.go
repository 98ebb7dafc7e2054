package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/catalog/domain"
)

// GormBrandRepository implements domain.BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

func (r *GormBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	if err := r.db.WithContext(ctx).Omit("Product").Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *GormBrandRepository) FindByID(ctx context.Context, id uint) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}
	return &brand, nil
}

// ExistsByName checks for a case-insensitive name clash within one product.
func (r *GormBrandRepository) ExistsByName(ctx context.Context, productID uint, name string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&domain.Brand{}).Where("product_id = ?", productID)
	return existsByName(query, name, excludeID)
}

func (r *GormBrandRepository) List(ctx context.Context, productID *uint) ([]domain.BrandView, error) {
	var views []domain.BrandView
	query := r.db.WithContext(ctx).
		Table("brands AS b").
		Select("b.id, b.name, b.product_id, b.created_at, b.updated_at, COALESCE(p.name, '') AS product_name").
		Joins("LEFT JOIN products p ON p.id = b.product_id")
	if productID != nil {
		query = query.Where("b.product_id = ?", *productID)
	}

	if err := query.Order("p.name ASC").Order("b.name ASC").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return views, nil
}

func (r *GormBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	if err := r.db.WithContext(ctx).Omit("Product").Save(brand).Error; err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	return nil
}

func (r *GormBrandRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Brand{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func (r *GormBrandRepository) CountStockEntries(ctx context.Context, brandID uint) (int64, error) {
	var total int64
	for _, table := range []string{"stock_ins", "stock_outs"} {
		var count int64
		if err := r.db.WithContext(ctx).Table(table).Where("brand_id = ?", brandID).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to count %s of brand: %w", table, err)
		}
		total += count
	}
	return total, nil
}
