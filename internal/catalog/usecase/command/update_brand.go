package command

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// UpdateBrandCommand renames a brand or moves it to another product
type UpdateBrandCommand struct {
	Actor     *access.Identity
	ID        uint
	Name      *string
	ProductID *uint
}

// UpdateBrandHandler handles brand update command
type UpdateBrandHandler struct {
	repo     domain.BrandRepository
	products domain.ProductRepository
}

// NewUpdateBrandHandler creates a new update brand handler
func NewUpdateBrandHandler(repo domain.BrandRepository, products domain.ProductRepository) *UpdateBrandHandler {
	return &UpdateBrandHandler{repo: repo, products: products}
}

// Handle executes the update brand command
func (h *UpdateBrandHandler) Handle(ctx context.Context, cmd UpdateBrandCommand) (*domain.Brand, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureBrand, access.ActionEdit); err != nil {
		return nil, err
	}

	brand, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return nil, apperror.NotFound("Brand not found")
		}
		return nil, apperror.Internal(err, "failed to load brand")
	}

	if cmd.ProductID != nil && *cmd.ProductID != brand.ProductID {
		if err := ensureProduct(ctx, h.products, *cmd.ProductID); err != nil {
			return nil, err
		}
		entries, err := h.repo.CountStockEntries(ctx, brand.ID)
		if err != nil {
			return nil, apperror.Internal(err, "failed to count brand stock entries")
		}
		if entries > 0 {
			return nil, apperror.Conflict("Cannot move a brand that already has stock entries")
		}
		brand.ProductID = *cmd.ProductID
	}
	if cmd.Name != nil {
		name, err := requiredName(*cmd.Name, "Brand")
		if err != nil {
			return nil, err
		}
		brand.Name = name
	}

	// Uniqueness is per product, so it is rechecked after a move too.
	if taken, err := h.repo.ExistsByName(ctx, brand.ProductID, brand.Name, brand.ID); err != nil {
		return nil, apperror.Internal(err, "failed to check brand name")
	} else if taken {
		return nil, apperror.Conflict("A brand with this name already exists")
	}

	if err := h.repo.Update(ctx, brand); err != nil {
		return nil, apperror.Internal(err, "failed to update brand")
	}

	return brand, nil
}
