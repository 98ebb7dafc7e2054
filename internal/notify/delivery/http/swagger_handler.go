package http

// SendLowStockAlert godoc
// @Summary Send a low stock alert
// @Description Emails the configured recipient when currentStock is at or below the threshold
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{productName=string,currentStock=int} true "Alert"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/notifications/low-stock [post]
func (h *NotifyHandler) SendLowStockAlertDoc() {}
