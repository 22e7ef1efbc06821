package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditStatus summarises whether an account still owes money.
type CreditStatus string

const (
	CreditPaid   CreditStatus = "paid"
	CreditUnpaid CreditStatus = "unpaid"
)

// CreditAccount is derived from sale history each time it is fetched.
type CreditAccount struct {
	CustomerKey  string          `json:"customerKey"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	TotalBilled  decimal.Decimal `json:"totalBilled"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	RemainingDue decimal.Decimal `json:"remainingDue"`
	Status       CreditStatus    `json:"status"`
	LastSaleAt   time.Time       `json:"lastSaleAt"`
	SaleIDs      []string        `json:"saleIDs"`
}

// StatementLine is one merged row of a consolidated credit statement.
type StatementLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"qty"`
	Price    decimal.Decimal `json:"price"` // Price of the first occurrence
	Amount   decimal.Decimal `json:"total"`
}

// Statement is a consolidated credit statement for a customer over a date range.
type Statement struct {
	Customer     Customer        `json:"customer"`
	From         *time.Time      `json:"from,omitempty"`
	To           *time.Time      `json:"to,omitempty"`
	ReceiptCount int             `json:"receiptCount"`
	Lines        []StatementLine `json:"lines"`
	PeriodBilled decimal.Decimal `json:"periodBilled"`
	Recovered    decimal.Decimal `json:"recovered"`
	RemainingDue decimal.Decimal `json:"remainingDue"`
}
