package command

import (
	"context"
	"strings"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
)

// CreateStockOutCommand records units leaving the inventory
type CreateStockOutCommand struct {
	Actor     *access.Identity
	ProductID uint
	BrandID   uint
	Quantity  int64
	Comments  string
}

// CreateStockOutHandler handles stock out creation command
type CreateStockOutHandler struct {
	repo domain.Repository
}

// NewCreateStockOutHandler creates a new create stock out handler
func NewCreateStockOutHandler(repo domain.Repository) *CreateStockOutHandler {
	return &CreateStockOutHandler{repo: repo}
}

// Handle executes the create stock out command. Availability is checked and
// the entry written while the brand row is locked.
func (h *CreateStockOutHandler) Handle(ctx context.Context, cmd CreateStockOutCommand) (*domain.StockOut, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureStockOut, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateQuantity(cmd.Quantity); err != nil {
		return nil, err
	}

	entry := &domain.StockOut{
		ProductID:   cmd.ProductID,
		BrandID:     cmd.BrandID,
		Quantity:    cmd.Quantity,
		Comments:    strings.TrimSpace(cmd.Comments),
		CreatedByID: cmd.Actor.UserID,
	}

	err := h.repo.WithinScopes(ctx, []uint{cmd.BrandID}, func(tx domain.Repository) error {
		if err := resolveBrand(ctx, tx, cmd.ProductID, cmd.BrandID); err != nil {
			return err
		}
		if err := domain.Withdraw(ctx, tx, entry.Scope(), entry.Quantity, false); err != nil {
			return err
		}
		return tx.CreateStockOut(ctx, entry)
	})
	if err != nil {
		return nil, txError(err, "failed to create stock out")
	}

	return entry, nil
}
