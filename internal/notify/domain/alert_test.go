package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	subject, body := Render(LowStockAlert{ProductName: "Shampoo", CurrentStock: 3, Threshold: 10, RequestedBy: "clerk"})
	assert.Equal(t, "Low stock alert: Shampoo", subject)
	assert.Contains(t, body, "Current stock: 3")
	assert.Contains(t, body, "Alert threshold: 10")
}
