package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/config"
)

type fakeNotifier struct {
	alerts []domain.LowStockAlert
	err    error
}

func (f *fakeNotifier) Notify(_ context.Context, alert domain.LowStockAlert) error {
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, alert)
	return nil
}

func newHandler(n domain.Notifier) *SendLowStockAlertHandler {
	h := NewSendLowStockAlertHandler(n, config.NotifyConfig{Recipient: "owner@example.com"}, config.StockConfig{LowStockThreshold: 10})
	h.now = func() time.Time { return time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC) }
	return h
}

var clerk = &access.Identity{UserID: 2, Username: "clerk", Role: access.RoleNormalAdmin}

func TestSendLowStockAlert(t *testing.T) {
	n := &fakeNotifier{}
	err := newHandler(n).Handle(context.Background(), SendLowStockAlertCommand{Actor: clerk, ProductName: " Shampoo ", CurrentStock: 10})
	require.NoError(t, err)
	require.Len(t, n.alerts, 1)
	assert.Equal(t, domain.LowStockAlert{
		ProductName:  "Shampoo",
		CurrentStock: 10,
		Threshold:    10,
		Recipient:    "owner@example.com",
		RequestedBy:  "clerk",
		RequestedAt:  time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}, n.alerts[0])
}

func TestSendLowStockAlert_Rejections(t *testing.T) {
	n := &fakeNotifier{}
	h := newHandler(n)
	ctx := context.Background()

	err := h.Handle(ctx, SendLowStockAlertCommand{ProductName: "Shampoo"})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	err = h.Handle(ctx, SendLowStockAlertCommand{Actor: clerk, CurrentStock: 1})
	assert.EqualError(t, err, "Product name is required")

	err = h.Handle(ctx, SendLowStockAlertCommand{Actor: clerk, ProductName: "Shampoo", CurrentStock: 11})
	assert.EqualError(t, err, "Stock is not low. Alerts are sent at or below 10 units")

	assert.Empty(t, n.alerts)
}

func TestSendLowStockAlert_DeliveryFailure(t *testing.T) {
	err := newHandler(&fakeNotifier{err: errors.New("smtp down")}).Handle(context.Background(), SendLowStockAlertCommand{
		Actor:        clerk,
		ProductName:  "Shampoo",
		CurrentStock: 2,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Equal(t, "Internal server error", apperror.PublicMessage(err))
}
