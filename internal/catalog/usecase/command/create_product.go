package command

import (
	"context"
	"errors"
	"strings"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Actor       *access.Identity
	Name        string
	Description string
	ServiceID   uint
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo     domain.ProductRepository
	services domain.ServiceRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, services domain.ServiceRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, services: services}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureProduct, access.ActionCreate); err != nil {
		return nil, err
	}

	name, err := requiredName(cmd.Name, "Product")
	if err != nil {
		return nil, err
	}
	if cmd.ServiceID == 0 {
		return nil, apperror.Validation("Service is required")
	}
	if err := ensureService(ctx, h.services, cmd.ServiceID); err != nil {
		return nil, err
	}

	if taken, err := h.repo.ExistsByName(ctx, name, 0); err != nil {
		return nil, apperror.Internal(err, "failed to check product name")
	} else if taken {
		return nil, apperror.Conflict("A product with this name already exists")
	}

	product := &domain.Product{
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		ServiceID:   cmd.ServiceID,
		CreatedByID: cmd.Actor.UserID,
	}
	if err := h.repo.Create(ctx, product); err != nil {
		return nil, apperror.Internal(err, "failed to create product")
	}

	return product, nil
}

func ensureService(ctx context.Context, services domain.ServiceRepository, id uint) error {
	if _, err := services.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return apperror.NotFound("Service not found")
		}
		return apperror.Internal(err, "failed to load service")
	}
	return nil
}
