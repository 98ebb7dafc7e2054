package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/internal/stock/usecase/command"
	"github.com/tair/inventory-tracker/internal/stock/usecase/query"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/web"
)

// Commands groups the ledger write handlers
type Commands struct {
	CreateStockIn  *command.CreateStockInHandler
	UpdateStockIn  *command.UpdateStockInHandler
	DeleteStockIn  *command.DeleteStockInHandler
	CreateStockOut *command.CreateStockOutHandler
	UpdateStockOut *command.UpdateStockOutHandler
	DeleteStockOut *command.DeleteStockOutHandler
}

// Queries groups the ledger read handlers
type Queries struct {
	Available    *query.AvailableStockHandler
	ListStockIn  *query.ListStockInHandler
	ListStockOut *query.ListStockOutHandler
	CurrentStock *query.CurrentStockHandler
	QuickStats   *query.QuickStatsHandler
}

// StockHandler handles HTTP requests for the stock ledger and reports
type StockHandler struct {
	commands     Commands
	queries      Queries
	metrics      *web.Metrics
	stockMetrics *StockMetrics
	authn        *web.Authenticator
}

// NewStockHandler creates a new stock handler
func NewStockHandler(commands Commands, queries Queries, metrics *web.Metrics, stockMetrics *StockMetrics, authn *web.Authenticator) *StockHandler {
	return &StockHandler{
		commands:     commands,
		queries:      queries,
		metrics:      metrics,
		stockMetrics: stockMetrics,
		authn:        authn,
	}
}

type stockInRequest struct {
	ProductID    uint            `json:"productId"`
	BrandID      uint            `json:"brandId"`
	Quantity     int64           `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Comments     string          `json:"comments"`
}

type updateStockInRequest struct {
	ProductID    *uint            `json:"productId"`
	BrandID      *uint            `json:"brandId"`
	Quantity     *int64           `json:"quantity"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit"`
	Comments     *string          `json:"comments"`
}

type stockOutRequest struct {
	ProductID uint   `json:"productId"`
	BrandID   uint   `json:"brandId"`
	Quantity  int64  `json:"quantity"`
	Comments  string `json:"comments"`
}

type updateStockOutRequest struct {
	ProductID *uint   `json:"productId"`
	BrandID   *uint   `json:"brandId"`
	Quantity  *int64  `json:"quantity"`
	Comments  *string `json:"comments"`
}

// GetAvailable handles GET /api/stock/available
func (h *StockHandler) GetAvailable(w http.ResponseWriter, r *http.Request) error {
	productID, err := web.QueryUint(r, "productId")
	if err != nil {
		return err
	}
	brandID, err := web.QueryUint(r, "brandId")
	if err != nil {
		return err
	}

	available, err := h.queries.Available.Handle(r.Context(), query.AvailableStockQuery{ProductID: productID, BrandID: brandID})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", available)
	return nil
}

func entryFilter(r *http.Request) (domain.EntryFilter, error) {
	productID, err := web.QueryUint(r, "productId")
	if err != nil {
		return domain.EntryFilter{}, err
	}
	brandID, err := web.QueryUint(r, "brandId")
	if err != nil {
		return domain.EntryFilter{}, err
	}
	return domain.EntryFilter{ProductID: productID, BrandID: brandID}, nil
}

// ListStockIn handles GET /api/stock-in
func (h *StockHandler) ListStockIn(w http.ResponseWriter, r *http.Request) error {
	filter, err := entryFilter(r)
	if err != nil {
		return err
	}

	entries, err := h.queries.ListStockIn.Handle(r.Context(), query.ListEntriesQuery{Actor: access.IdentityFrom(r.Context()), Filter: filter})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", entries)
	return nil
}

// CreateStockIn handles POST /api/stock-in
func (h *StockHandler) CreateStockIn(w http.ResponseWriter, r *http.Request) error {
	var req stockInRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	entry, err := h.commands.CreateStockIn.Handle(r.Context(), command.CreateStockInCommand{
		Actor:        access.IdentityFrom(r.Context()),
		ProductID:    req.ProductID,
		BrandID:      req.BrandID,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Comments:     req.Comments,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusCreated, "Stock in recorded successfully", entry)
	return nil
}

// UpdateStockIn handles PUT /api/stock-in/{id}
func (h *StockHandler) UpdateStockIn(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}
	var req updateStockInRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	entry, err := h.commands.UpdateStockIn.Handle(r.Context(), command.UpdateStockInCommand{
		Actor:        access.IdentityFrom(r.Context()),
		ID:           id,
		ProductID:    req.ProductID,
		BrandID:      req.BrandID,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Comments:     req.Comments,
	})
	if err != nil {
		return h.ledgerError(r, "update_stock_in", err)
	}

	web.RespondJSON(w, http.StatusOK, "Stock in updated successfully", entry)
	return nil
}

// DeleteStockIn handles DELETE /api/stock-in/{id}
func (h *StockHandler) DeleteStockIn(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	if err := h.commands.DeleteStockIn.Handle(r.Context(), command.DeleteStockInCommand{Actor: access.IdentityFrom(r.Context()), ID: id}); err != nil {
		return h.ledgerError(r, "delete_stock_in", err)
	}

	web.RespondJSON(w, http.StatusOK, "Stock in deleted successfully", nil)
	return nil
}

// ListStockOut handles GET /api/stock-out
func (h *StockHandler) ListStockOut(w http.ResponseWriter, r *http.Request) error {
	filter, err := entryFilter(r)
	if err != nil {
		return err
	}

	entries, err := h.queries.ListStockOut.Handle(r.Context(), query.ListEntriesQuery{Actor: access.IdentityFrom(r.Context()), Filter: filter})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", entries)
	return nil
}

// CreateStockOut handles POST /api/stock-out
func (h *StockHandler) CreateStockOut(w http.ResponseWriter, r *http.Request) error {
	var req stockOutRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	entry, err := h.commands.CreateStockOut.Handle(r.Context(), command.CreateStockOutCommand{
		Actor:     access.IdentityFrom(r.Context()),
		ProductID: req.ProductID,
		BrandID:   req.BrandID,
		Quantity:  req.Quantity,
		Comments:  req.Comments,
	})
	if err != nil {
		return h.ledgerError(r, "create_stock_out", err)
	}

	web.RespondJSON(w, http.StatusCreated, "Stock out recorded successfully", entry)
	return nil
}

// UpdateStockOut handles PUT /api/stock-out/{id}
func (h *StockHandler) UpdateStockOut(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}
	var req updateStockOutRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	entry, err := h.commands.UpdateStockOut.Handle(r.Context(), command.UpdateStockOutCommand{
		Actor:     access.IdentityFrom(r.Context()),
		ID:        id,
		ProductID: req.ProductID,
		BrandID:   req.BrandID,
		Quantity:  req.Quantity,
		Comments:  req.Comments,
	})
	if err != nil {
		return h.ledgerError(r, "update_stock_out", err)
	}

	web.RespondJSON(w, http.StatusOK, "Stock out updated successfully", entry)
	return nil
}

// DeleteStockOut handles DELETE /api/stock-out/{id}
func (h *StockHandler) DeleteStockOut(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	if err := h.commands.DeleteStockOut.Handle(r.Context(), command.DeleteStockOutCommand{Actor: access.IdentityFrom(r.Context()), ID: id}); err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Stock out deleted successfully", nil)
	return nil
}

// CurrentStock handles GET /api/reports/current-stock
func (h *StockHandler) CurrentStock(w http.ResponseWriter, r *http.Request) error {
	productID, err := web.QueryUint(r, "productId")
	if err != nil {
		return err
	}

	rows, err := h.queries.CurrentStock.Handle(r.Context(), query.CurrentStockQuery{Actor: access.IdentityFrom(r.Context()), ProductID: productID})
	if err != nil {
		return err
	}
	if productID == nil {
		h.stockMetrics.observeReport(rows)
	}

	web.RespondJSON(w, http.StatusOK, "", rows)
	return nil
}

// QuickStats handles GET /api/reports/quick-stats
func (h *StockHandler) QuickStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.queries.QuickStats.Handle(r.Context(), query.QuickStatsQuery{Actor: access.IdentityFrom(r.Context())})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", stats)
	return nil
}

// ledgerError counts and logs insufficient-stock rejections before they are rendered.
func (h *StockHandler) ledgerError(r *http.Request, operation string, err error) error {
	var shortfall domain.Shortfall
	if apperror.KindOf(err) == apperror.KindInsufficientStock && errors.As(err, &shortfall) {
		h.stockMetrics.rejected(operation)
		logger.Info(r.Context()).
			Str("operation", operation).
			Int64("available", shortfall.Available).
			Int64("requested", shortfall.Requested).
			Msg("Stock write rejected")
	}
	return err
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	route := func(path, method string, fn web.HandlerFunc) {
		router.HandleFunc(path, h.metrics.Instrument(path, h.authn.Required(web.Handle(fn)))).Methods(method)
	}

	// Public routes
	router.HandleFunc("/api/stock/available", h.metrics.Instrument("/api/stock/available", web.Handle(h.GetAvailable))).Methods(http.MethodGet)

	route("/api/stock-in", http.MethodGet, h.ListStockIn)
	route("/api/stock-in", http.MethodPost, h.CreateStockIn)
	route("/api/stock-in/{id:[0-9]+}", http.MethodPut, h.UpdateStockIn)
	route("/api/stock-in/{id:[0-9]+}", http.MethodDelete, h.DeleteStockIn)

	route("/api/stock-out", http.MethodGet, h.ListStockOut)
	route("/api/stock-out", http.MethodPost, h.CreateStockOut)
	route("/api/stock-out/{id:[0-9]+}", http.MethodPut, h.UpdateStockOut)
	route("/api/stock-out/{id:[0-9]+}", http.MethodDelete, h.DeleteStockOut)

	route("/api/reports/current-stock", http.MethodGet, h.CurrentStock)
	route("/api/reports/quick-stats", http.MethodGet, h.QuickStats)
}
