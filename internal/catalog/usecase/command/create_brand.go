package command

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// CreateBrandCommand represents the command to add a brand to a product
type CreateBrandCommand struct {
	Actor     *access.Identity
	Name      string
	ProductID uint
}

// CreateBrandHandler handles brand creation command
type CreateBrandHandler struct {
	repo     domain.BrandRepository
	products domain.ProductRepository
}

// NewCreateBrandHandler creates a new create brand handler
func NewCreateBrandHandler(repo domain.BrandRepository, products domain.ProductRepository) *CreateBrandHandler {
	return &CreateBrandHandler{repo: repo, products: products}
}

// Handle executes the create brand command
func (h *CreateBrandHandler) Handle(ctx context.Context, cmd CreateBrandCommand) (*domain.Brand, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureBrand, access.ActionCreate); err != nil {
		return nil, err
	}

	name, err := requiredName(cmd.Name, "Brand")
	if err != nil {
		return nil, err
	}
	if cmd.ProductID == 0 {
		return nil, apperror.Validation("Product is required")
	}
	if err := ensureProduct(ctx, h.products, cmd.ProductID); err != nil {
		return nil, err
	}

	if taken, err := h.repo.ExistsByName(ctx, cmd.ProductID, name, 0); err != nil {
		return nil, apperror.Internal(err, "failed to check brand name")
	} else if taken {
		return nil, apperror.Conflict("A brand with this name already exists")
	}

	brand := &domain.Brand{Name: name, ProductID: cmd.ProductID}
	if err := h.repo.Create(ctx, brand); err != nil {
		return nil, apperror.Internal(err, "failed to create brand")
	}

	return brand, nil
}

func ensureProduct(ctx context.Context, products domain.ProductRepository, id uint) error {
	if _, err := products.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return apperror.NotFound("Product not found")
		}
		return apperror.Internal(err, "failed to load product")
	}
	return nil
}
