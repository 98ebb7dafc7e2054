package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Actor     *access.Identity
	ServiceID *uint
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.ProductView, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	products, err := h.repo.List(ctx, domain.ProductFilter{ServiceID: q.ServiceID})
	if err != nil {
		return nil, apperror.Internal(err, "failed to list products")
	}
	if products == nil {
		products = []domain.ProductView{}
	}
	return products, nil
}
