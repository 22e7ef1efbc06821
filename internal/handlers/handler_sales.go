package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type saleHandler struct {
	saleService portssvc.SaleSvc
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvc) {
	h := &saleHandler{saleService: saleService}

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
	}
}

// listSales godoc
// @Summary List sales
// @Description Lists recorded sales, newest first.
// @Tags sales
// @Produce json
// @Param saleType query string false "cash, permanent or temporary"
// @Param limit query int false "Page size (max 200)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	saleID := c.Param("saleID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("sale_id", saleID))

	sale, err := h.saleService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}
