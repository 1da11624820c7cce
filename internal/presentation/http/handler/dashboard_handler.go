package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sellbridge/consign-api/internal/application/service"
	"github.com/sellbridge/consign-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the accounts-payable overview
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles retrieving the payable overview across all active
// consignors
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
