package transport

import (
	"context"

	"github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// LogNotifier writes alerts to the log. Used in development.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, alert domain.LowStockAlert) error {
	subject, _ := domain.Render(alert)
	logger.Info(ctx).
		Str("subject", subject).
		Str("product", alert.ProductName).
		Int64("current_stock", alert.CurrentStock).
		Int64("threshold", alert.Threshold).
		Str("requested_by", alert.RequestedBy).
		Msg("Low stock alert")
	return nil
}
