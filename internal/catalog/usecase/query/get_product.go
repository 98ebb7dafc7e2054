package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	Actor *access.Identity
	ID    uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.ProductView, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	id := q.ID
	products, err := h.repo.List(ctx, domain.ProductFilter{ID: &id})
	if err != nil {
		return nil, apperror.Internal(err, "failed to get product")
	}
	if len(products) == 0 {
		return nil, apperror.NotFound("Product not found")
	}
	return &products[0], nil
}
