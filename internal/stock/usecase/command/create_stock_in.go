package command

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// CreateStockInCommand records received units
type CreateStockInCommand struct {
	Actor        *access.Identity
	ProductID    uint
	BrandID      uint
	Quantity     int64
	PricePerUnit decimal.Decimal
	Comments     string
}

// CreateStockInHandler handles stock in creation command
type CreateStockInHandler struct {
	repo domain.Repository
}

// NewCreateStockInHandler creates a new create stock in handler
func NewCreateStockInHandler(repo domain.Repository) *CreateStockInHandler {
	return &CreateStockInHandler{repo: repo}
}

// Handle executes the create stock in command
func (h *CreateStockInHandler) Handle(ctx context.Context, cmd CreateStockInCommand) (*domain.StockIn, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureStockIn, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateQuantity(cmd.Quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(cmd.PricePerUnit); err != nil {
		return nil, err
	}
	if err := resolveBrand(ctx, h.repo, cmd.ProductID, cmd.BrandID); err != nil {
		return nil, err
	}

	entry := &domain.StockIn{
		ProductID:    cmd.ProductID,
		BrandID:      cmd.BrandID,
		Quantity:     cmd.Quantity,
		PricePerUnit: cmd.PricePerUnit,
		Comments:     strings.TrimSpace(cmd.Comments),
		CreatedByID:  cmd.Actor.UserID,
	}
	if err := h.repo.CreateStockIn(ctx, entry); err != nil {
		return nil, apperror.Internal(err, "failed to create stock in")
	}

	return entry, nil
}
