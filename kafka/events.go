package kafka

import "time"

// LowStockAlertEvent asks the notifier to email a low-stock warning.
type LowStockAlertEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ProductName  string    `json:"product_name"`
	CurrentStock int64     `json:"current_stock"`
	Threshold    int64     `json:"threshold"`
	Recipient    string    `json:"recipient"`
	RequestedBy  string    `json:"requested_by"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeLowStockAlert = "stock.low_stock_alert"
)

// Kafka topics
const (
	TopicStockAlerts = "stock-alerts"
)
