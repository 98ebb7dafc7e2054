package domain

import (
	"context"
	"fmt"
	"time"
)

// LowStockAlert asks for a warning about a product running out
type LowStockAlert struct {
	ProductName  string
	CurrentStock int64
	Threshold    int64
	Recipient    string
	RequestedBy  string
	RequestedAt  time.Time
}

// Notifier delivers an alert over one transport
type Notifier interface {
	Notify(ctx context.Context, alert LowStockAlert) error
}

// Render returns the subject and plain-text body of the alert email.
func Render(alert LowStockAlert) (subject, body string) {
	subject = fmt.Sprintf("Low stock alert: %s", alert.ProductName)
	body = fmt.Sprintf(
		"Stock for %s is running low.\n\nCurrent stock: %d\nAlert threshold: %d\n\nRequested by %s at %s.\n",
		alert.ProductName,
		alert.CurrentStock,
		alert.Threshold,
		alert.RequestedBy,
		alert.RequestedAt.UTC().Format(time.RFC1123),
	)
	return subject, body
}
