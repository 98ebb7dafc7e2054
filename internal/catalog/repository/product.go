package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/catalog/domain"
)

// GormProductRepository implements domain.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Omit("Service").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *GormProductRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return existsByName(r.db.WithContext(ctx).Model(&domain.Product{}), name, excludeID)
}

func (r *GormProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductView, error) {
	var views []domain.ProductView
	query := r.db.WithContext(ctx).
		Table("products AS p").
		Select(`p.id, p.name, p.description, p.service_id, p.created_by_id, p.created_at, p.updated_at,
			COALESCE(s.name, '') AS service_name,
			COALESCE(u.username, '') AS created_by_name,
			(SELECT COUNT(*) FROM brands b WHERE b.product_id = p.id) AS brand_count`).
		Joins("LEFT JOIN services s ON s.id = p.service_id").
		Joins("LEFT JOIN users u ON u.id = p.created_by_id")

	if filter.ServiceID != nil {
		query = query.Where("p.service_id = ?", *filter.ServiceID)
	}
	if filter.ID != nil {
		query = query.Where("p.id = ?", *filter.ID)
	}

	if err := query.Order("p.name ASC").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return views, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Omit("Service").Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// CountDependents counts brands and stock entries that reference the product.
func (r *GormProductRepository) CountDependents(ctx context.Context, productID uint) (int64, error) {
	var total int64
	for _, table := range []string{"brands", "stock_ins", "stock_outs"} {
		var count int64
		if err := r.db.WithContext(ctx).Table(table).Where("product_id = ?", productID).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to count %s of product: %w", table, err)
		}
		total += count
	}
	return total, nil
}
