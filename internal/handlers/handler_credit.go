package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/export"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const statementDateLayout = "2006-01-02"

// creditHandler handles temporary and permanent credit accounts.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
	shopName      string
}

// PaymentFailureResponse is returned when a payment could not be saved.
// The balances are the ones the account had before the attempt.
type PaymentFailureResponse struct {
	ErrorResponse
	dto.RecordPaymentResponse
}

// TemporaryPaymentFailureResponse is the temporary account variant of PaymentFailureResponse.
type TemporaryPaymentFailureResponse struct {
	ErrorResponse
	dto.TemporaryPaymentResponse
}

func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade, shopName string) {
	h := &creditHandler{creditService: creditService, shopName: shopName}

	credit := rg.Group("/credit")
	{
		credit.GET("/temporary", h.listTemporaryAccounts)
		credit.POST("/temporary/payments", h.recordTemporaryPayment)
		credit.GET("/permanent", h.listCustomers)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("/:customerID", h.getCustomer)
		customers.POST("/:customerID/payments", h.recordPayment)
		customers.GET("/:customerID/statement", h.statement)
		customers.GET("/:customerID/reminder", h.reminder)
	}
}

// listTemporaryAccounts godoc
// @Summary List temporary credit accounts
// @Description Groups temporary credit sales by customer name and phone, most recent first.
// @Tags credit
// @Produce json
// @Success 200 {object} dto.CreditAccountsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit/temporary [get]
func (h *creditHandler) listTemporaryAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	accounts, err := h.creditService.TemporaryAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load temporary accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditAccountsResponse(accounts))
}

// recordTemporaryPayment godoc
// @Summary Record a temporary credit payment
// @Description Spreads the amount over the account's open sales, oldest first.
// @Tags credit
// @Accept json
// @Produce json
// @Param payment body dto.TemporaryPaymentRequest true "Account key and amount"
// @Success 200 {object} dto.TemporaryPaymentResponse
// @Failure 400 {object} TemporaryPaymentFailureResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} TemporaryPaymentFailureResponse
// @Security BearerAuth
// @Router /credit/temporary/payments [post]
func (h *creditHandler) recordTemporaryPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.TemporaryPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.creditService.RecordTemporaryPayment(c.Request.Context(), req, userID)
	if err != nil {
		if resp == nil {
			respondError(c, logger, err, "Failed to record payment")
			return
		}
		status, msg := paymentFailure(logger, err)
		c.JSON(status, TemporaryPaymentFailureResponse{ErrorResponse{Error: msg}, *resp})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listCustomers godoc
// @Summary List permanent credit customers
// @Tags credit
// @Produce json
// @Success 200 {object} dto.CustomersResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit/permanent [get]
func (h *creditHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	customers, err := h.creditService.PermanentAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomersResponse(customers))
}

// createCustomer godoc
// @Summary Open a permanent credit account
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *creditHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	customer, err := h.creditService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// getCustomer godoc
// @Summary Get a customer and their payments
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID} [get]
func (h *creditHandler) getCustomer(c *gin.Context) {
	customerID := c.Param("customerID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("customer_id", customerID))

	resp, err := h.creditService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// recordPayment godoc
// @Summary Record a credit payment
// @Description Applies a payment to the customer's ledger. On failure the body carries the balances from before the attempt.
// @Tags customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.RecordPaymentResponse
// @Failure 400 {object} PaymentFailureResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} PaymentFailureResponse
// @Security BearerAuth
// @Router /customers/{customerID}/payments [post]
func (h *creditHandler) recordPayment(c *gin.Context) {
	customerID := c.Param("customerID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("customer_id", customerID))
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.creditService.RecordPayment(c.Request.Context(), customerID, req, userID)
	if err != nil {
		if resp == nil {
			respondError(c, logger, err, "Failed to record payment")
			return
		}
		status, msg := paymentFailure(logger, err)
		c.JSON(status, PaymentFailureResponse{ErrorResponse{Error: msg}, *resp})
		return
	}

	logger.Info("Payment recorded", slog.String("remaining_due", resp.RemainingDue.String()))
	c.JSON(http.StatusOK, resp)
}

// statement godoc
// @Summary Customer statement
// @Description Consolidates the customer's sales in the date range. Both dates are inclusive. format=xlsx returns a spreadsheet.
// @Tags customers
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param customerID path string true "Customer ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param format query string false "json or xlsx"
// @Success 200 {object} domain.Statement
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID}/statement [get]
func (h *creditHandler) statement(c *gin.Context) {
	customerID := c.Param("customerID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("customer_id", customerID))
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	from, to, err := statementRange(params)
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}

	st, err := h.creditService.Statement(c.Request.Context(), customerID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}

	if params.Format != "xlsx" {
		c.JSON(http.StatusOK, st)
		return
	}

	c.Header("Content-Type", export.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.StatementFilename(*st)))
	c.Status(http.StatusOK)
	if err := export.WriteStatementXLSX(c.Writer, *st, h.shopName); err != nil {
		logger.Error("Failed to write statement spreadsheet", slog.String("error", err.Error()))
	}
}

// reminder godoc
// @Summary Payment reminder
// @Description Builds a WhatsApp reminder for the customer's outstanding balance.
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} creditledger.Reminder
// @Failure 400 {object} ErrorResponse "Nothing owed or no phone"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID}/reminder [get]
func (h *creditHandler) reminder(c *gin.Context) {
	customerID := c.Param("customerID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("customer_id", customerID))

	reminder, err := h.creditService.Reminder(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger, err, "Failed to build reminder")
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// statementRange parses the inclusive from/to days into the half-open range the service expects.
func statementRange(params dto.StatementParams) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if params.From != "" {
		d, err := time.ParseInLocation(statementDateLayout, params.From, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: from must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		from = &d
	}
	if params.To != "" {
		d, err := time.ParseInLocation(statementDateLayout, params.To, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: to must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		end := d.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}

func paymentFailure(logger *slog.Logger, err error) (int, string) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Payment failed", slog.String("error", err.Error()))
		return status, "Failed to record payment"
	}
	logger.Warn("Payment rejected", slog.String("error", err.Error()))
	return status, err.Error()
}
