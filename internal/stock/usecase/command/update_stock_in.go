package command

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// UpdateStockInCommand changes the fields that are set
type UpdateStockInCommand struct {
	Actor        *access.Identity
	ID           uint
	ProductID    *uint
	BrandID      *uint
	Quantity     *int64
	PricePerUnit *decimal.Decimal
	Comments     *string
}

// UpdateStockInHandler handles stock in update command
type UpdateStockInHandler struct {
	repo domain.Repository
}

// NewUpdateStockInHandler creates a new update stock in handler
func NewUpdateStockInHandler(repo domain.Repository) *UpdateStockInHandler {
	return &UpdateStockInHandler{repo: repo}
}

// Handle executes the update stock in command. Lowering or moving an entry
// may not leave its old scope with less than zero units.
func (h *UpdateStockInHandler) Handle(ctx context.Context, cmd UpdateStockInCommand) (*domain.StockIn, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureStockIn, access.ActionEdit); err != nil {
		return nil, err
	}
	if cmd.Quantity != nil {
		if err := validateQuantity(*cmd.Quantity); err != nil {
			return nil, err
		}
	}
	if cmd.PricePerUnit != nil {
		if err := validatePrice(*cmd.PricePerUnit); err != nil {
			return nil, err
		}
	}

	var updated *domain.StockIn
	err := lockEntryScopes(ctx, h.repo, func(ctx context.Context) ([]uint, error) {
		current, err := h.repo.FindStockIn(ctx, cmd.ID)
		if err != nil {
			return nil, stockInLookupError(err)
		}
		return scopeBrands(current.BrandID, cmd.BrandID), nil
	}, func(tx domain.Repository, locked []uint) error {
		entry, err := tx.FindStockIn(ctx, cmd.ID)
		if err != nil {
			return stockInLookupError(err)
		}
		if !slices.Contains(locked, entry.BrandID) {
			return errEntryMoved
		}
		oldScope, oldQuantity := entry.Scope(), entry.Quantity

		if cmd.ProductID != nil {
			entry.ProductID = *cmd.ProductID
		}
		if cmd.BrandID != nil {
			entry.BrandID = *cmd.BrandID
		}
		if cmd.Quantity != nil {
			entry.Quantity = *cmd.Quantity
		}
		if cmd.PricePerUnit != nil {
			entry.PricePerUnit = *cmd.PricePerUnit
		}
		if cmd.Comments != nil {
			entry.Comments = strings.TrimSpace(*cmd.Comments)
		}

		if oldScope.Same(entry.Scope()) {
			if err := domain.Withdraw(ctx, tx, oldScope, oldQuantity-entry.Quantity, true); err != nil {
				return err
			}
		} else {
			if err := resolveBrand(ctx, tx, entry.ProductID, entry.BrandID); err != nil {
				return err
			}
			if err := domain.Withdraw(ctx, tx, oldScope, oldQuantity, false); err != nil {
				return err
			}
		}

		if err := tx.UpdateStockIn(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, txError(err, "failed to update stock in")
	}

	return updated, nil
}

func stockInLookupError(err error) error {
	if errors.Is(err, domain.ErrStockInNotFound) {
		return apperror.NotFound("Stock in entry not found")
	}
	return apperror.Internal(err, "failed to load stock in")
}
