package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// posHandler serves the sales terminal. The terminal owns the cart and tenders and
// sends them with every request.
type posHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newPOSHandler(cs portssvc.CheckoutSvcFacade) *posHandler {
	return &posHandler{checkoutService: cs}
}

// registerPOSRoutes registers the terminal routes. Checkout honours Idempotency-Key.
func registerPOSRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade, store *middleware.IdempotencyStore) {
	h := newPOSHandler(checkoutService)

	pos := rg.Group("/pos")
	{
		pos.POST("/cart/lines", h.addToCart)
		pos.PATCH("/cart/lines/:productID", h.updateLine)
		pos.PUT("/cart/lines/:productID/quantity", h.updateQuantity)
		pos.POST("/quote", h.quote)
		pos.POST("/tenders", h.editTenders)
		pos.POST("/checkout", middleware.Idempotency(store), h.checkout)
	}
}

// addToCart godoc
// @Summary Add a product to the cart
// @Description Adds one unit of the product, or increments its line, as long as stock allows.
// @Tags pos
// @Accept json
// @Produce json
// @Param request body dto.AddToCartRequest true "Cart and product"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse "Out of stock or invalid request"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/cart/lines [post]
func (h *posHandler) addToCart(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	cart, err := h.checkoutService.AddToCart(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add product to cart")
		return
	}
	c.JSON(http.StatusOK, h.checkoutService.CartSummary(cart))
}

// updateLine godoc
// @Summary Edit a cart line
// @Description Sets the line's custom price or item discount. Empty or invalid values count as zero.
// @Tags pos
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param request body dto.UpdateLineRequest true "Cart, field and value"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product not in cart"
// @Security BearerAuth
// @Router /pos/cart/lines/{productID} [patch]
func (h *posHandler) updateLine(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("product_id", productID))
	var req dto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	cart, err := h.checkoutService.UpdateLine(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update cart line")
		return
	}
	c.JSON(http.StatusOK, h.checkoutService.CartSummary(cart))
}

// updateQuantity godoc
// @Summary Set a cart line quantity
// @Description Zero or less removes the line. Quantities above the stock seen when the line was added are rejected.
// @Tags pos
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param request body dto.UpdateQuantityRequest true "Cart and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/cart/lines/{productID}/quantity [put]
func (h *posHandler) updateQuantity(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("product_id", productID))
	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	cart, err := h.checkoutService.UpdateQuantity(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update quantity")
		return
	}
	c.JSON(http.StatusOK, h.checkoutService.CartSummary(cart))
}

// quote godoc
// @Summary Compute sale totals
// @Description Returns subtotal, discount, service charge, tax and total plus the tender summary.
// @Tags pos
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Terminal state"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/quote [post]
func (h *posHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.checkoutService.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// editTenders godoc
// @Summary Edit the tender list
// @Description Adds, updates, removes or resets tenders. The last remaining tender cannot be removed.
// @Tags pos
// @Accept json
// @Produce json
// @Param request body dto.EditTendersRequest true "Tenders and edit"
// @Success 200 {object} dto.EditTendersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/tenders [post]
func (h *posHandler) editTenders(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.EditTendersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.checkoutService.EditTenders(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to edit tenders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// checkout godoc
// @Summary Complete a sale
// @Description Validates and records the sale, takes its items out of stock and returns the receipt with a reset terminal state.
// @Tags pos
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Repeated keys replay the first successful response"
// @Param request body dto.CheckoutRequest true "Terminal state"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product or customer not found"
// @Failure 409 {object} ErrorResponse "Same Idempotency-Key still in progress"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/checkout [post]
func (h *posHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.checkoutService.Checkout(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to save sale")
		return
	}

	logger.Info("Checkout completed", slog.String("sale_id", resp.Sale.SaleID), slog.String("reference", resp.Reference))
	c.JSON(http.StatusCreated, resp)
}
