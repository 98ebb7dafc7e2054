package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/catalog/domain"
)

// GormServiceRepository implements domain.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *GormServiceRepository) FindByID(ctx context.Context, id uint) (*domain.Service, error) {
	var service domain.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	return &service, nil
}

// ExistsByName compares names case-insensitively, skipping excludeID.
func (r *GormServiceRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return existsByName(r.db.WithContext(ctx).Model(&domain.Service{}), name, excludeID)
}

func (r *GormServiceRepository) List(ctx context.Context) ([]domain.ServiceView, error) {
	var views []domain.ServiceView
	err := r.db.WithContext(ctx).
		Table("services AS s").
		Select(`s.id, s.name, s.description, s.service_charge, s.created_by_id, s.created_at, s.updated_at,
			COALESCE(u.username, '') AS created_by_name,
			(SELECT COUNT(*) FROM products p WHERE p.service_id = s.id) AS product_count`).
		Joins("LEFT JOIN users u ON u.id = s.created_by_id").
		Order("s.name ASC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return views, nil
}

func (r *GormServiceRepository) Update(ctx context.Context, service *domain.Service) error {
	if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (r *GormServiceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Service{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *GormServiceRepository) CountProducts(ctx context.Context, serviceID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("service_id = ?", serviceID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products of service: %w", err)
	}
	return count, nil
}

func existsByName(query *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	query = query.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	return count > 0, nil
}
