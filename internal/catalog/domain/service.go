package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a category of offering that groups products
type Service struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description   string          `json:"description"`
	ServiceCharge decimal.Decimal `json:"serviceCharge" gorm:"type:decimal(12,2);not null"`
	CreatedByID   uint            `json:"createdById" gorm:"not null;index"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TableName specifies the table name
func (Service) TableName() string {
	return "services"
}

// ServiceView is a service listing row with related names resolved
type ServiceView struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
	ProductCount  int64           `json:"productCount"`
	CreatedByID   uint            `json:"createdById"`
	CreatedByName string          `json:"createdByName"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ServiceRepository defines the contract for service data access
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	FindByID(ctx context.Context, id uint) (*Service, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]ServiceView, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uint) error
	CountProducts(ctx context.Context, serviceID uint) (int64, error)
}
