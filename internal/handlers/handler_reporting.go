package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportHandler struct {
	reportService portssvc.ReportSvc
	now           func() time.Time
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvc) {
	h := &reportHandler{reportService: reportService, now: time.Now}

	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.salesReport)
	}
}

// salesReport godoc
// @Summary Sales report
// @Description Totals by sale type, credit billed and recovered, and the best selling products for the given days.
// @Tags reports
// @Produce json
// @Param start query string false "First day (YYYY-MM-DD), defaults to today"
// @Param end query string false "Last day, inclusive (YYYY-MM-DD), defaults to start"
// @Success 200 {object} domain.SalesReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportHandler) salesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	from, to, err := reportRange(params, h.now())
	if err != nil {
		respondError(c, logger, err, "Invalid report range")
		return
	}
	logger = logger.With(slog.String("from", from.Format(statementDateLayout)), slog.String("to", to.Format(statementDateLayout)))

	report, err := h.reportService.SalesReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build sales report")
		return
	}
	logger.Info("Sales report generated", slog.Int("sales", report.All.Count))
	c.JSON(http.StatusOK, report)
}

// reportRange turns inclusive start/end days into [from, to). The end defaults to the start.
func reportRange(params dto.SalesReportParams, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if params.Start != "" {
		d, err := time.ParseInLocation(statementDateLayout, params.Start, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		from = d
	}
	last := from
	if params.End != "" {
		d, err := time.ParseInLocation(statementDateLayout, params.End, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		last = d
	}
	if last.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end is before start", apperrors.ErrValidation)
	}
	return from, last.AddDate(0, 0, 1), nil
}
