package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCreditLimit applies when a customer is created without one.
var DefaultCreditLimit = decimal.NewFromInt(50000)

// Customer is a permanent credit customer with a persisted account.
type Customer struct {
	CustomerID   string          `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Gender       string          `json:"gender"`
	Address      string          `json:"address"`
	CNIC         string          `json:"cnic"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	RemainingDue decimal.Decimal `json:"remainingDue"`
	AuditFields
}

// CreditPayment is one payment recorded against a permanent customer's ledger.
type CreditPayment struct {
	PaymentID  string          `json:"id"`
	CustomerID string          `json:"customerID"`
	SaleID     string          `json:"saleId"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	Detail     string          `json:"detail"`
	Date       time.Time       `json:"date"`
}
