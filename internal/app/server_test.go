package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/notify/transport"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func (c *client) do(method, path string, body interface{}) (int, envelope) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (c *client) created(path string, body interface{}) uint {
	c.t.Helper()
	code, env := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, code, env.Error)

	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &out))
	return out.ID
}

func newTestServer(t *testing.T) *client {
	t.Helper()

	cfg := &config.Config{
		ServiceName: "inventory-test",
		Server:      config.ServerConfig{RequestTimeout: 5 * time.Second},
		JWT:         config.JWTConfig{Secret: "test-secret", TTL: time.Hour},
		Notify:      config.NotifyConfig{Transport: config.TransportLog, Recipient: "owner@example.com"},
		Seed: config.SeedConfig{
			EmployeeID: "EMP-0001",
			Username:   "owner",
			Email:      "owner@example.com",
			Password:   "change-me",
		},
		Stock: config.StockConfig{LowStockThreshold: 10},
	}

	db := testutil.NewTestDB(t)
	server, err := InitializeServer(cfg, db, prometheus.NewRegistry(), transport.LogNotifier{}, nil)
	require.NoError(t, err)
	require.NoError(t, server.Seed(context.Background()))

	c := &client{t: t, handler: server.Handler()}
	code, env := c.do(http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email":    "owner@example.com",
		"password": "change-me",
	})
	require.Equal(t, http.StatusOK, code, env.Error)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.Token)
	c.token = session.Token
	return c
}

func TestStockOutScenario(t *testing.T) {
	c := newTestServer(t)

	serviceID := c.created("/api/services", map[string]interface{}{"name": "Hair Care", "serviceCharge": "15.00"})
	productID := c.created("/api/products", map[string]interface{}{"name": "Shampoo", "serviceId": serviceID})
	brandID := c.created("/api/brands", map[string]interface{}{"name": "Dove", "productId": productID})

	c.created("/api/stock-in", map[string]interface{}{
		"productId": productID, "brandId": brandID, "quantity": 20, "pricePerUnit": "4.50",
	})
	c.created("/api/stock-out", map[string]interface{}{
		"productId": productID, "brandId": brandID, "quantity": 15,
	})

	code, env := c.do(http.MethodPost, "/api/stock-out", map[string]interface{}{
		"productId": productID, "brandId": brandID, "quantity": 10,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Insufficient stock. Available: 5, Requested: 10", env.Error)

	code, env = c.do(http.MethodGet, fmt.Sprintf("/api/stock/available?productId=%d&brandId=%d", productID, brandID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "5", string(env.Data))

	code, env = c.do(http.MethodGet, "/api/reports/current-stock", nil)
	require.Equal(t, http.StatusOK, code)
	var report []struct {
		ProductName  string `json:"productName"`
		CurrentStock int64  `json:"currentStock"`
		LowStock     bool   `json:"lowStock"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report, 1)
	assert.Equal(t, "Shampoo", report[0].ProductName)
	assert.Equal(t, int64(5), report[0].CurrentStock)
	assert.True(t, report[0].LowStock)

	code, env = c.do(http.MethodPost, "/api/notifications/low-stock", map[string]interface{}{
		"productName": "Shampoo", "currentStock": 5,
	})
	assert.Equal(t, http.StatusOK, code, env.Error)
}

func TestRequiresSession(t *testing.T) {
	c := newTestServer(t)
	c.token = ""

	code, env := c.do(http.MethodGet, "/api/services", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	code, _ = c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
}
