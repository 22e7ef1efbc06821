package dto

import (
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditAccountsResponse lists derived credit accounts with their combined balance.
type CreditAccountsResponse struct {
	Accounts       []domain.CreditAccount `json:"accounts"`
	TotalRemaining decimal.Decimal        `json:"totalRemaining"`
}

// CustomersResponse lists permanent credit customers with their combined balance.
type CustomersResponse struct {
	Customers      []domain.Customer `json:"customers"`
	TotalRemaining decimal.Decimal   `json:"totalRemaining"`
}

// TemporaryPaymentRequest records a payment from a temporary credit customer.
type TemporaryPaymentRequest struct {
	CustomerKey string          `json:"customerKey" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// TemporaryPaymentResponse is the account after the payment and how it was spread.
type TemporaryPaymentResponse struct {
	Account     domain.CreditAccount          `json:"account"`
	Allocations []creditledger.SaleAllocation `json:"allocations"`
}

// CreateCustomerRequest defines the data needed to open a permanent credit account.
type CreateCustomerRequest struct {
	Name        string           `json:"name" binding:"required"`
	Phone       string           `json:"phone" binding:"required"`
	Email       string           `json:"email" binding:"omitempty,email"`
	Gender      string           `json:"gender" binding:"omitempty,oneof=male female other"`
	Address     string           `json:"address"`
	CNIC        string           `json:"cnic"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
	DueDate     *time.Time       `json:"dueDate"`
}

// RecordPaymentRequest is a payment against a permanent customer's ledger.
type RecordPaymentRequest struct {
	Amount decimal.Decimal      `json:"amount"`
	Method domain.PaymentMethod `json:"method" binding:"omitempty,paymentmethod"`
	Detail string               `json:"detail"`
	Date   *time.Time           `json:"date"`
	SaleID string               `json:"saleId"`
}

// RecordPaymentResponse carries the customer's balances after the payment.
// On failure Account holds the balances as they were before the attempt.
type RecordPaymentResponse struct {
	CustomerID   string                `json:"customerID"`
	TotalPaid    decimal.Decimal       `json:"totalPaid"`
	RemainingDue decimal.Decimal       `json:"remainingDue"`
	Account      domain.CreditAccount  `json:"account"`
	Payment      *domain.CreditPayment `json:"payment,omitempty"`
}

// StatementParams are the query parameters of a statement request.
type StatementParams struct {
	From   string `form:"from"` // YYYY-MM-DD
	To     string `form:"to"`   // YYYY-MM-DD, inclusive
	Format string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// CustomerDetailResponse is a customer with their payment history.
type CustomerDetailResponse struct {
	Customer domain.Customer        `json:"customer"`
	Payments []domain.CreditPayment `json:"payments"`
}

// ToCreditAccountsResponse wraps accounts with the sum of what they still owe.
func ToCreditAccountsResponse(accounts []domain.CreditAccount) CreditAccountsResponse {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.RemainingDue)
	}
	return CreditAccountsResponse{Accounts: accounts, TotalRemaining: total}
}

// ToCustomersResponse wraps customers with the sum of what they still owe.
func ToCustomersResponse(customers []domain.Customer) CustomersResponse {
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.RemainingDue)
	}
	return CustomersResponse{Customers: customers, TotalRemaining: total}
}
