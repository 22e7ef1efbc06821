package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a row of the customers table.
type Customer struct {
	CustomerID   string          `db:"customer_id"`
	Name         string          `db:"name"`
	Phone        string          `db:"phone"`
	Email        string          `db:"email"`
	Gender       string          `db:"gender"`
	Address      string          `db:"address"`
	CNIC         string          `db:"cnic"`
	CreditLimit  decimal.Decimal `db:"credit_limit"`
	DueDate      sql.NullTime    `db:"due_date"`
	TotalPaid    decimal.Decimal `db:"total_paid"`
	RemainingDue decimal.Decimal `db:"remaining_due"`
	AuditFields
}

// CreditPayment is a row of the credit_payments table.
type CreditPayment struct {
	PaymentID  string          `db:"payment_id"`
	CustomerID string          `db:"customer_id"`
	SaleID     sql.NullString  `db:"sale_id"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	Detail     string          `db:"detail"`
	PaidAt     time.Time       `db:"paid_at"`
}
