package command

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// UpdateStockOutCommand changes the fields that are set
type UpdateStockOutCommand struct {
	Actor     *access.Identity
	ID        uint
	ProductID *uint
	BrandID   *uint
	Quantity  *int64
	Comments  *string
}

// UpdateStockOutHandler handles stock out update command
type UpdateStockOutHandler struct {
	repo domain.Repository
}

// NewUpdateStockOutHandler creates a new update stock out handler
func NewUpdateStockOutHandler(repo domain.Repository) *UpdateStockOutHandler {
	return &UpdateStockOutHandler{repo: repo}
}

// Handle executes the update stock out command.
//
// Within the same product and brand only the increase has to be available.
// Moving the entry to another scope needs the full quantity there.
func (h *UpdateStockOutHandler) Handle(ctx context.Context, cmd UpdateStockOutCommand) (*domain.StockOut, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureStockOut, access.ActionEdit); err != nil {
		return nil, err
	}
	if cmd.Quantity != nil {
		if err := validateQuantity(*cmd.Quantity); err != nil {
			return nil, err
		}
	}

	var updated *domain.StockOut
	err := lockEntryScopes(ctx, h.repo, func(ctx context.Context) ([]uint, error) {
		current, err := h.repo.FindStockOut(ctx, cmd.ID)
		if err != nil {
			return nil, stockOutLookupError(err)
		}
		return scopeBrands(current.BrandID, cmd.BrandID), nil
	}, func(tx domain.Repository, locked []uint) error {
		entry, err := tx.FindStockOut(ctx, cmd.ID)
		if err != nil {
			return stockOutLookupError(err)
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
		if cmd.Comments != nil {
			entry.Comments = strings.TrimSpace(*cmd.Comments)
		}

		newScope := entry.Scope()
		if oldScope.Same(newScope) {
			if err := domain.Withdraw(ctx, tx, newScope, entry.Quantity-oldQuantity, true); err != nil {
				return err
			}
		} else {
			if err := resolveBrand(ctx, tx, entry.ProductID, entry.BrandID); err != nil {
				return err
			}
			if err := domain.Withdraw(ctx, tx, newScope, entry.Quantity, false); err != nil {
				return err
			}
		}

		if err := tx.UpdateStockOut(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, txError(err, "failed to update stock out")
	}

	return updated, nil
}

func stockOutLookupError(err error) error {
	if errors.Is(err, domain.ErrStockOutNotFound) {
		return apperror.NotFound("Stock out entry not found")
	}
	return apperror.Internal(err, "failed to load stock out")
}
