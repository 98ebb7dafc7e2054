package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListBrandsQuery lists brands, optionally of one product
type ListBrandsQuery struct {
	Actor     *access.Identity
	ProductID *uint
}

// ListBrandsHandler handles list brands query
type ListBrandsHandler struct {
	repo domain.BrandRepository
}

// NewListBrandsHandler creates a new list brands handler
func NewListBrandsHandler(repo domain.BrandRepository) *ListBrandsHandler {
	return &ListBrandsHandler{repo: repo}
}

// Handle executes the list brands query
func (h *ListBrandsHandler) Handle(ctx context.Context, q ListBrandsQuery) ([]domain.BrandView, error) {
	if err := access.Authorize(q.Actor, access.FeatureBrand, access.ActionView); err != nil {
		return nil, err
	}

	brands, err := h.repo.List(ctx, q.ProductID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list brands")
	}
	if brands == nil {
		brands = []domain.BrandView{}
	}
	return brands, nil
}
