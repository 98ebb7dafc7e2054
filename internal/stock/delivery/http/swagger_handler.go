package http

// GetAvailable godoc
// @Summary Get available stock
// @Description Stock in minus stock out for a product, or one of its brands. May be negative.
// @Tags Stock
// @Produce json
// @Param productId query int true "Product ID"
// @Param brandId query int false "Brand ID"
// @Success 200 {object} object{success=bool,data=int}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/stock/available [get]
func (h *StockHandler) GetAvailableDoc() {}

// ListStockIn godoc
// @Summary List stock in entries
// @Tags StockIn
// @Security BearerAuth
// @Produce json
// @Param productId query int false "Filter by product"
// @Param brandId query int false "Filter by brand"
// @Success 200 {object} object{success=bool,data=[]domain.StockInView}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/stock-in [get]
func (h *StockHandler) ListStockInDoc() {}

// CreateStockIn godoc
// @Summary Record stock in
// @Tags StockIn
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{productId=int,brandId=int,quantity=int,pricePerUnit=number,comments=string} true "Entry fields"
// @Success 201 {object} object{success=bool,message=string,data=domain.StockIn}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-in [post]
func (h *StockHandler) CreateStockInDoc() {}

// UpdateStockIn godoc
// @Summary Update a stock in entry
// @Description Rejected when the change would leave the previous scope below zero
// @Tags StockIn
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body object{productId=int,brandId=int,quantity=int,pricePerUnit=number,comments=string} true "Entry fields"
// @Success 200 {object} object{success=bool,message=string,data=domain.StockIn}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-in/{id} [put]
func (h *StockHandler) UpdateStockInDoc() {}

// DeleteStockIn godoc
// @Summary Delete a stock in entry
// @Tags StockIn
// @Security BearerAuth
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-in/{id} [delete]
func (h *StockHandler) DeleteStockInDoc() {}

// ListStockOut godoc
// @Summary List stock out entries
// @Tags StockOut
// @Security BearerAuth
// @Produce json
// @Param productId query int false "Filter by product"
// @Param brandId query int false "Filter by brand"
// @Success 200 {object} object{success=bool,data=[]domain.StockOutView}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/stock-out [get]
func (h *StockHandler) ListStockOutDoc() {}

// CreateStockOut godoc
// @Summary Record stock out
// @Description Rejected with an insufficient stock message when the brand cannot cover the quantity
// @Tags StockOut
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{productId=int,brandId=int,quantity=int,comments=string} true "Entry fields"
// @Success 201 {object} object{success=bool,message=string,data=domain.StockOut}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-out [post]
func (h *StockHandler) CreateStockOutDoc() {}

// UpdateStockOut godoc
// @Summary Update a stock out entry
// @Tags StockOut
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body object{productId=int,brandId=int,quantity=int,comments=string} true "Entry fields"
// @Success 200 {object} object{success=bool,message=string,data=domain.StockOut}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-out/{id} [put]
func (h *StockHandler) UpdateStockOutDoc() {}

// DeleteStockOut godoc
// @Summary Delete a stock out entry
// @Tags StockOut
// @Security BearerAuth
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-out/{id} [delete]
func (h *StockHandler) DeleteStockOutDoc() {}

// CurrentStock godoc
// @Summary Current stock per product
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param productId query int false "Only this product"
// @Success 200 {object} object{success=bool,data=[]domain.ProductStock}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/reports/current-stock [get]
func (h *StockHandler) CurrentStockDoc() {}

// QuickStats godoc
// @Summary Inventory counters
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=domain.QuickStats}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/reports/quick-stats [get]
func (h *StockHandler) QuickStatsDoc() {}
