package command

import (
	"context"
	"slices"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
)

// DeleteStockInCommand represents the command to delete a stock in entry
type DeleteStockInCommand struct {
	Actor *access.Identity
	ID    uint
}

// DeleteStockInHandler handles stock in deletion command
type DeleteStockInHandler struct {
	repo domain.Repository
}

// NewDeleteStockInHandler creates a new delete stock in handler
func NewDeleteStockInHandler(repo domain.Repository) *DeleteStockInHandler {
	return &DeleteStockInHandler{repo: repo}
}

// Handle executes the delete stock in command. The units must not already
// have left through stock out entries.
func (h *DeleteStockInHandler) Handle(ctx context.Context, cmd DeleteStockInCommand) error {
	if err := access.Authorize(cmd.Actor, access.FeatureStockIn, access.ActionDelete); err != nil {
		return err
	}

	err := lockEntryScopes(ctx, h.repo, func(ctx context.Context) ([]uint, error) {
		current, err := h.repo.FindStockIn(ctx, cmd.ID)
		if err != nil {
			return nil, stockInLookupError(err)
		}
		return []uint{current.BrandID}, nil
	}, func(tx domain.Repository, locked []uint) error {
		entry, err := tx.FindStockIn(ctx, cmd.ID)
		if err != nil {
			return stockInLookupError(err)
		}
		if !slices.Contains(locked, entry.BrandID) {
			return errEntryMoved
		}
		if err := domain.Withdraw(ctx, tx, entry.Scope(), entry.Quantity, false); err != nil {
			return err
		}
		if err := tx.DeleteStockIn(ctx, entry.ID); err != nil {
			return stockInLookupError(err)
		}
		return nil
	})
	if err != nil {
		return txError(err, "failed to delete stock in")
	}
	return nil
}
