package command

import (
	"context"
	"errors"
	"strings"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// UpdateProductCommand changes the fields that are set
type UpdateProductCommand struct {
	Actor       *access.Identity
	ID          uint
	Name        *string
	Description *string
	ServiceID   *uint
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo     domain.ProductRepository
	services domain.ServiceRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, services domain.ServiceRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, services: services}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureProduct, access.ActionEdit); err != nil {
		return nil, err
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, apperror.NotFound("Product not found")
		}
		return nil, apperror.Internal(err, "failed to load product")
	}

	if cmd.Name != nil {
		name, err := requiredName(*cmd.Name, "Product")
		if err != nil {
			return nil, err
		}
		if taken, err := h.repo.ExistsByName(ctx, name, product.ID); err != nil {
			return nil, apperror.Internal(err, "failed to check product name")
		} else if taken {
			return nil, apperror.Conflict("A product with this name already exists")
		}
		product.Name = name
	}
	if cmd.Description != nil {
		product.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.ServiceID != nil && *cmd.ServiceID != product.ServiceID {
		if err := ensureService(ctx, h.services, *cmd.ServiceID); err != nil {
			return nil, err
		}
		product.ServiceID = *cmd.ServiceID
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, apperror.Internal(err, "failed to update product")
	}

	return product, nil
}
