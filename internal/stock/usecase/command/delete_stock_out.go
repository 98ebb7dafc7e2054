package command

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
)

// DeleteStockOutCommand represents the command to delete a stock out entry
type DeleteStockOutCommand struct {
	Actor *access.Identity
	ID    uint
}

// DeleteStockOutHandler handles stock out deletion command
type DeleteStockOutHandler struct {
	repo domain.Repository
}

// NewDeleteStockOutHandler creates a new delete stock out handler
func NewDeleteStockOutHandler(repo domain.Repository) *DeleteStockOutHandler {
	return &DeleteStockOutHandler{repo: repo}
}

// Handle executes the delete stock out command
func (h *DeleteStockOutHandler) Handle(ctx context.Context, cmd DeleteStockOutCommand) error {
	if err := access.Authorize(cmd.Actor, access.FeatureStockOut, access.ActionDelete); err != nil {
		return err
	}

	if err := h.repo.DeleteStockOut(ctx, cmd.ID); err != nil {
		return stockOutLookupError(err)
	}
	return nil
}
