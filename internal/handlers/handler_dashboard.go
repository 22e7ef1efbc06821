package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	now              func() time.Time
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService, now: time.Now}
	rg.GET("/dashboard", h.summary)
}

// summary godoc
// @Summary Dashboard summary
// @Description Today's and this month's sales, low stock count and outstanding credit.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	resp, err := h.dashboardService.Summary(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}
