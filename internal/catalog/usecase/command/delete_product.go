package command

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	Actor *access.Identity
	ID    uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := access.Authorize(cmd.Actor, access.FeatureProduct, access.ActionDelete); err != nil {
		return err
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return apperror.NotFound("Product not found")
		}
		return apperror.Internal(err, "failed to load product")
	}

	dependents, err := h.repo.CountDependents(ctx, cmd.ID)
	if err != nil {
		return apperror.Internal(err, "failed to count product dependents")
	}
	if dependents > 0 {
		return apperror.Conflict("Cannot delete a product that still has brands or stock entries")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return apperror.NotFound("Product not found")
		}
		return apperror.Internal(err, "failed to delete product")
	}
	return nil
}
