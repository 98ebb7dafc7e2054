package command

import (
	"context"
	"strings"
	"time"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// SendLowStockAlertCommand represents a request to warn about a product
type SendLowStockAlertCommand struct {
	Actor        *access.Identity
	ProductName  string
	CurrentStock int64
}

// SendLowStockAlertHandler handles the low stock alert command
type SendLowStockAlertHandler struct {
	notifier  domain.Notifier
	recipient string
	threshold int64
	now       func() time.Time
}

// NewSendLowStockAlertHandler creates a new low stock alert handler
func NewSendLowStockAlertHandler(notifier domain.Notifier, notify config.NotifyConfig, stock config.StockConfig) *SendLowStockAlertHandler {
	return &SendLowStockAlertHandler{
		notifier:  notifier,
		recipient: notify.Recipient,
		threshold: stock.LowStockThreshold,
		now:       time.Now,
	}
}

// Handle validates the alert and sends it once. Failures are not retried.
func (h *SendLowStockAlertHandler) Handle(ctx context.Context, cmd SendLowStockAlertCommand) error {
	if err := access.RequireSession(cmd.Actor); err != nil {
		return err
	}

	productName := strings.TrimSpace(cmd.ProductName)
	if productName == "" {
		return apperror.Validation("Product name is required")
	}
	if cmd.CurrentStock > h.threshold {
		return apperror.Validation("Stock is not low. Alerts are sent at or below %d units", h.threshold)
	}

	alert := domain.LowStockAlert{
		ProductName:  productName,
		CurrentStock: cmd.CurrentStock,
		Threshold:    h.threshold,
		Recipient:    h.recipient,
		RequestedBy:  cmd.Actor.Username,
		RequestedAt:  h.now(),
	}
	if err := h.notifier.Notify(ctx, alert); err != nil {
		logger.Error(ctx).Err(err).Str("product", productName).Msg("Failed to send low stock alert")
		return apperror.Internal(err, "Failed to send notification")
	}
	return nil
}
