package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles the dashboard summary request
// @Summary Dashboard summary
// @Description Business aggregates, optionally bounded by startDate/endDate
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	startDate, err := parseDateQuery(c, "startDate")
	if err != nil {
		response.BadRequest(c, "Invalid startDate. Use YYYY-MM-DD")
		return
	}
	endDate, err := parseDateQuery(c, "endDate")
	if err != nil {
		response.BadRequest(c, "Invalid endDate. Use YYYY-MM-DD")
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), *userID, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}
