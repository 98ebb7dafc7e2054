package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/usecase/command"
	"github.com/tair/inventory-tracker/internal/catalog/usecase/query"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/web"
)

// CatalogHandler handles HTTP requests for services, products and brands
type CatalogHandler struct {
	createServiceHandler *command.CreateServiceHandler
	updateServiceHandler *command.UpdateServiceHandler
	deleteServiceHandler *command.DeleteServiceHandler
	createProductHandler *command.CreateProductHandler
	updateProductHandler *command.UpdateProductHandler
	deleteProductHandler *command.DeleteProductHandler
	createBrandHandler   *command.CreateBrandHandler
	updateBrandHandler   *command.UpdateBrandHandler
	deleteBrandHandler   *command.DeleteBrandHandler

	listServicesHandler *query.ListServicesHandler
	listProductsHandler *query.ListProductsHandler
	getProductHandler   *query.GetProductHandler
	listBrandsHandler   *query.ListBrandsHandler

	metrics *web.Metrics
	authn   *web.Authenticator
}

// Commands groups the catalog write handlers
type Commands struct {
	CreateService *command.CreateServiceHandler
	UpdateService *command.UpdateServiceHandler
	DeleteService *command.DeleteServiceHandler
	CreateProduct *command.CreateProductHandler
	UpdateProduct *command.UpdateProductHandler
	DeleteProduct *command.DeleteProductHandler
	CreateBrand   *command.CreateBrandHandler
	UpdateBrand   *command.UpdateBrandHandler
	DeleteBrand   *command.DeleteBrandHandler
}

// Queries groups the catalog read handlers
type Queries struct {
	ListServices *query.ListServicesHandler
	ListProducts *query.ListProductsHandler
	GetProduct   *query.GetProductHandler
	ListBrands   *query.ListBrandsHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(commands Commands, queries Queries, metrics *web.Metrics, authn *web.Authenticator) *CatalogHandler {
	return &CatalogHandler{
		createServiceHandler: commands.CreateService,
		updateServiceHandler: commands.UpdateService,
		deleteServiceHandler: commands.DeleteService,
		createProductHandler: commands.CreateProduct,
		updateProductHandler: commands.UpdateProduct,
		deleteProductHandler: commands.DeleteProduct,
		createBrandHandler:   commands.CreateBrand,
		updateBrandHandler:   commands.UpdateBrand,
		deleteBrandHandler:   commands.DeleteBrand,
		listServicesHandler:  queries.ListServices,
		listProductsHandler:  queries.ListProducts,
		getProductHandler:    queries.GetProduct,
		listBrandsHandler:    queries.ListBrands,
		metrics:              metrics,
		authn:                authn,
	}
}

type serviceRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
}

type updateServiceRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	ServiceCharge *decimal.Decimal `json:"serviceCharge"`
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ServiceID   uint   `json:"serviceId"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ServiceID   *uint   `json:"serviceId"`
}

type brandRequest struct {
	Name      string `json:"name"`
	ProductID uint   `json:"productId"`
}

type updateBrandRequest struct {
	Name      *string `json:"name"`
	ProductID *uint   `json:"productId"`
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) error {
	services, err := h.listServicesHandler.Handle(r.Context(), query.ListServicesQuery{Actor: access.IdentityFrom(r.Context())})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", services)
	return nil
}

// CreateService handles POST /api/services
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) error {
	var req serviceRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	service, err := h.createServiceHandler.Handle(r.Context(), command.CreateServiceCommand{
		Actor:         access.IdentityFrom(r.Context()),
		Name:          req.Name,
		Description:   req.Description,
		ServiceCharge: req.ServiceCharge,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusCreated, "Service created successfully", service)
	return nil
}

// UpdateService handles PUT /api/services/{id}
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}
	var req updateServiceRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	service, err := h.updateServiceHandler.Handle(r.Context(), command.UpdateServiceCommand{
		Actor:         access.IdentityFrom(r.Context()),
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		ServiceCharge: req.ServiceCharge,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Service updated successfully", service)
	return nil
}

// DeleteService handles DELETE /api/services/{id}
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	if err := h.deleteServiceHandler.Handle(r.Context(), command.DeleteServiceCommand{Actor: access.IdentityFrom(r.Context()), ID: id}); err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Service deleted successfully", nil)
	return nil
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	serviceID, err := web.QueryUint(r, "serviceId")
	if err != nil {
		return err
	}

	products, err := h.listProductsHandler.Handle(r.Context(), query.ListProductsQuery{
		Actor:     access.IdentityFrom(r.Context()),
		ServiceID: serviceID,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", products)
	return nil
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{Actor: access.IdentityFrom(r.Context()), ID: id})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", product)
	return nil
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var req productRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	product, err := h.createProductHandler.Handle(r.Context(), command.CreateProductCommand{
		Actor:       access.IdentityFrom(r.Context()),
		Name:        req.Name,
		Description: req.Description,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusCreated, "Product created successfully", product)
	return nil
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}
	var req updateProductRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	product, err := h.updateProductHandler.Handle(r.Context(), command.UpdateProductCommand{
		Actor:       access.IdentityFrom(r.Context()),
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Product updated successfully", product)
	return nil
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	if err := h.deleteProductHandler.Handle(r.Context(), command.DeleteProductCommand{Actor: access.IdentityFrom(r.Context()), ID: id}); err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Product deleted successfully", nil)
	return nil
}

// ListBrands handles GET /api/brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) error {
	productID, err := web.QueryUint(r, "productId")
	if err != nil {
		return err
	}

	brands, err := h.listBrandsHandler.Handle(r.Context(), query.ListBrandsQuery{
		Actor:     access.IdentityFrom(r.Context()),
		ProductID: productID,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", brands)
	return nil
}

// CreateBrand handles POST /api/brands
func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) error {
	var req brandRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	brand, err := h.createBrandHandler.Handle(r.Context(), command.CreateBrandCommand{
		Actor:     access.IdentityFrom(r.Context()),
		Name:      req.Name,
		ProductID: req.ProductID,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusCreated, "Brand created successfully", brand)
	return nil
}

// UpdateBrand handles PUT /api/brands/{id}
func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}
	var req updateBrandRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.Name == nil && req.ProductID == nil {
		return apperror.Validation("Nothing to update")
	}

	brand, err := h.updateBrandHandler.Handle(r.Context(), command.UpdateBrandCommand{
		Actor:     access.IdentityFrom(r.Context()),
		ID:        id,
		Name:      req.Name,
		ProductID: req.ProductID,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Brand updated successfully", brand)
	return nil
}

// DeleteBrand handles DELETE /api/brands/{id}
func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	if err := h.deleteBrandHandler.Handle(r.Context(), command.DeleteBrandCommand{Actor: access.IdentityFrom(r.Context()), ID: id}); err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Brand deleted successfully", nil)
	return nil
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	route := func(path, method string, fn web.HandlerFunc) {
		router.HandleFunc(path, h.metrics.Instrument(path, h.authn.Required(web.Handle(fn)))).Methods(method)
	}

	route("/api/services", http.MethodGet, h.ListServices)
	route("/api/services", http.MethodPost, h.CreateService)
	route("/api/services/{id:[0-9]+}", http.MethodPut, h.UpdateService)
	route("/api/services/{id:[0-9]+}", http.MethodDelete, h.DeleteService)

	route("/api/products", http.MethodGet, h.ListProducts)
	route("/api/products", http.MethodPost, h.CreateProduct)
	route("/api/products/{id:[0-9]+}", http.MethodGet, h.GetProduct)
	route("/api/products/{id:[0-9]+}", http.MethodPut, h.UpdateProduct)
	route("/api/products/{id:[0-9]+}", http.MethodDelete, h.DeleteProduct)

	route("/api/brands", http.MethodGet, h.ListBrands)
	route("/api/brands", http.MethodPost, h.CreateBrand)
	route("/api/brands/{id:[0-9]+}", http.MethodPut, h.UpdateBrand)
	route("/api/brands/{id:[0-9]+}", http.MethodDelete, h.DeleteBrand)
}
