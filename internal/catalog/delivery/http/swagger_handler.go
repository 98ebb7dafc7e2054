package http

// ListServices godoc
// @Summary List services
// @Tags Services
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=[]domain.ServiceView}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/services [get]
func (h *CatalogHandler) ListServicesDoc() {}

// CreateService godoc
// @Summary Create a service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,serviceCharge=number} true "Service fields"
// @Success 201 {object} object{success=bool,message=string,data=domain.Service}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/services [post]
func (h *CatalogHandler) CreateServiceDoc() {}

// UpdateService godoc
// @Summary Update a service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body object{name=string,description=string,serviceCharge=number} true "Service fields"
// @Success 200 {object} object{success=bool,message=string,data=domain.Service}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/services/{id} [put]
func (h *CatalogHandler) UpdateServiceDoc() {}

// DeleteService godoc
// @Summary Delete a service
// @Description Blocked while products reference the service
// @Tags Services
// @Security BearerAuth
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/services/{id} [delete]
func (h *CatalogHandler) DeleteServiceDoc() {}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param serviceId query int false "Filter by service"
// @Success 200 {object} object{success=bool,data=[]domain.ProductView}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=domain.ProductView}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,serviceId=int} true "Product fields"
// @Success 201 {object} object{success=bool,message=string,data=domain.Product}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,serviceId=int} true "Product fields"
// @Success 200 {object} object{success=bool,message=string,data=domain.Product}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Blocked while brands or stock entries reference the product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// ListBrands godoc
// @Summary List brands
// @Tags Brands
// @Security BearerAuth
// @Produce json
// @Param productId query int false "Filter by product"
// @Success 200 {object} object{success=bool,data=[]domain.BrandView}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/brands [get]
func (h *CatalogHandler) ListBrandsDoc() {}

// CreateBrand godoc
// @Summary Create a brand
// @Description Super admin only
// @Tags Brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,productId=int} true "Brand fields"
// @Success 201 {object} object{success=bool,message=string,data=domain.Brand}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/brands [post]
func (h *CatalogHandler) CreateBrandDoc() {}

// UpdateBrand godoc
// @Summary Update a brand
// @Description Super admin only. A brand with stock entries cannot move to another product
// @Tags Brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param request body object{name=string,productId=int} true "Brand fields"
// @Success 200 {object} object{success=bool,message=string,data=domain.Brand}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/brands/{id} [put]
func (h *CatalogHandler) UpdateBrandDoc() {}

// DeleteBrand godoc
// @Summary Delete a brand
// @Description Super admin only. Blocked while stock entries reference the brand
// @Tags Brands
// @Security BearerAuth
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrandDoc() {}
