package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListServicesQuery represents the query to list services
type ListServicesQuery struct {
	Actor *access.Identity
}

// ListServicesHandler handles list services query
type ListServicesHandler struct {
	repo domain.ServiceRepository
}

// NewListServicesHandler creates a new list services handler
func NewListServicesHandler(repo domain.ServiceRepository) *ListServicesHandler {
	return &ListServicesHandler{repo: repo}
}

// Handle executes the list services query
func (h *ListServicesHandler) Handle(ctx context.Context, q ListServicesQuery) ([]domain.ServiceView, error) {
	if err := access.RequireSession(q.Actor); err != nil {
		return nil, err
	}

	services, err := h.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list services")
	}
	if services == nil {
		services = []domain.ServiceView{}
	}
	return services, nil
}
