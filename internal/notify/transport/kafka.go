package transport

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// AlertPublisher is the part of kafka.Publisher the notifier needs
type AlertPublisher interface {
	PublishLowStockAlert(ctx context.Context, event kafka.LowStockAlertEvent) error
}

// KafkaNotifier hands alerts to the stock-alerts topic; cmd/notifier sends the email
type KafkaNotifier struct {
	publisher AlertPublisher
}

func NewKafkaNotifier(publisher AlertPublisher) *KafkaNotifier {
	return &KafkaNotifier{publisher: publisher}
}

func (n *KafkaNotifier) Notify(ctx context.Context, alert domain.LowStockAlert) error {
	event := kafka.LowStockAlertEvent{
		EventID:      uuid.New().String(),
		EventType:    kafka.EventTypeLowStockAlert,
		ProductName:  alert.ProductName,
		CurrentStock: alert.CurrentStock,
		Threshold:    alert.Threshold,
		Recipient:    alert.Recipient,
		RequestedBy:  alert.RequestedBy,
		Timestamp:    alert.RequestedAt,
	}
	if err := n.publisher.PublishLowStockAlert(ctx, event); err != nil {
		return fmt.Errorf("failed to publish low stock alert: %w", err)
	}
	return nil
}

// AlertEventHandler delivers consumed alert events through next
func AlertEventHandler(next domain.Notifier) kafka.EventHandler {
	return func(ctx context.Context, event kafka.LowStockAlertEvent) error {
		logger.Debug(ctx).
			Str("event_id", event.EventID).
			Str("product", event.ProductName).
			Msg("Delivering low stock alert")

		return next.Notify(ctx, domain.LowStockAlert{
			ProductName:  event.ProductName,
			CurrentStock: event.CurrentStock,
			Threshold:    event.Threshold,
			Recipient:    event.Recipient,
			RequestedBy:  event.RequestedBy,
			RequestedAt:  event.Timestamp,
		})
	}
}
