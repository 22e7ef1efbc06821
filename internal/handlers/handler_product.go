package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to the product catalog.
type productHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newProductHandler(cs portssvc.CatalogSvcFacade) *productHandler {
	return &productHandler{catalogService: cs}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newProductHandler(catalogService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// listProducts godoc
// @Summary List products
// @Description Lists the catalog, optionally filtered by category and a search term matched against name, barcode and SKU.
// @Tags products
// @Produce json
// @Param category query string false "Category"
// @Param location query string false "Location"
// @Param q query string false "Search term"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductsResponse(products, h.catalogService.LowStockThreshold()))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("product_id", productID))

	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product, h.catalogService.LowStockThreshold()))
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a product to the catalog.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Barcode or SKU already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product, h.catalogService.LowStockThreshold()))
}

// updateProduct godoc
// @Summary Update a product
// @Description Changes the fields present in the body, such as price, stock, category or location.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Barcode or SKU already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("product_id", productID))
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), productID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product, h.catalogService.LowStockThreshold()))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param productID path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Product appears on recorded sales"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("product_id", productID))

	if err := h.catalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondError(c, logger, err, "Failed to delete product")
		return
	}
	logger.Info("Product deleted")
	c.Status(http.StatusNoContent)
}
