package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-tracker/internal/stock/domain"
)

// StockMetrics holds the ledger instruments
type StockMetrics struct {
	stockOutRejected *prometheus.CounterVec
	lowStockProducts prometheus.Gauge
}

// NewStockMetrics creates the ledger instruments and registers them with reg
func NewStockMetrics(reg prometheus.Registerer) *StockMetrics {
	m := &StockMetrics{
		stockOutRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_stock_out_rejected_total",
				Help: "Stock out writes rejected for insufficient stock",
			},
			[]string{"operation"},
		),
		lowStockProducts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_low_stock_products",
				Help: "Products at or below the low stock threshold in the last report",
			},
		),
	}

	reg.MustRegister(m.stockOutRejected, m.lowStockProducts)
	return m
}

func (m *StockMetrics) rejected(operation string) {
	m.stockOutRejected.WithLabelValues(operation).Inc()
}

func (m *StockMetrics) observeReport(rows []domain.ProductStock) {
	var low float64
	for _, row := range rows {
		if row.LowStock {
			low++
		}
	}
	m.lowStockProducts.Set(low)
}
