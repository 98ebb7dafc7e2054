package command

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// DeleteBrandCommand represents the command to delete a brand
type DeleteBrandCommand struct {
	Actor *access.Identity
	ID    uint
}

// DeleteBrandHandler handles brand deletion command
type DeleteBrandHandler struct {
	repo domain.BrandRepository
}

// NewDeleteBrandHandler creates a new delete brand handler
func NewDeleteBrandHandler(repo domain.BrandRepository) *DeleteBrandHandler {
	return &DeleteBrandHandler{repo: repo}
}

// Handle executes the delete brand command
func (h *DeleteBrandHandler) Handle(ctx context.Context, cmd DeleteBrandCommand) error {
	if err := access.Authorize(cmd.Actor, access.FeatureBrand, access.ActionDelete); err != nil {
		return err
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return apperror.NotFound("Brand not found")
		}
		return apperror.Internal(err, "failed to load brand")
	}

	entries, err := h.repo.CountStockEntries(ctx, cmd.ID)
	if err != nil {
		return apperror.Internal(err, "failed to count brand stock entries")
	}
	if entries > 0 {
		return apperror.Conflict("Cannot delete a brand that still has stock entries")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return apperror.NotFound("Brand not found")
		}
		return apperror.Internal(err, "failed to delete brand")
	}
	return nil
}
