package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/notify/usecase/command"
	"github.com/tair/inventory-tracker/pkg/web"
)

// NotifyHandler handles HTTP requests for notifications
type NotifyHandler struct {
	sendHandler *command.SendLowStockAlertHandler
	metrics     *web.Metrics
	authn       *web.Authenticator
}

// NewNotifyHandler creates a new notify handler
func NewNotifyHandler(sendHandler *command.SendLowStockAlertHandler, metrics *web.Metrics, authn *web.Authenticator) *NotifyHandler {
	return &NotifyHandler{sendHandler: sendHandler, metrics: metrics, authn: authn}
}

type lowStockRequest struct {
	ProductName  string `json:"productName"`
	CurrentStock int64  `json:"currentStock"`
}

// SendLowStockAlert handles POST /api/notifications/low-stock
func (h *NotifyHandler) SendLowStockAlert(w http.ResponseWriter, r *http.Request) error {
	var req lowStockRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	err := h.sendHandler.Handle(r.Context(), command.SendLowStockAlertCommand{
		Actor:        access.IdentityFrom(r.Context()),
		ProductName:  req.ProductName,
		CurrentStock: req.CurrentStock,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Low stock alert sent", nil)
	return nil
}

// RegisterRoutes registers notification routes
func (h *NotifyHandler) RegisterRoutes(router *mux.Router) {
	const path = "/api/notifications/low-stock"
	router.HandleFunc(path, h.metrics.Instrument(path, h.authn.Required(web.Handle(h.SendLowStockAlert)))).Methods(http.MethodPost)
}
