package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesFigure is a count and a total for one slice of a report.
type SalesFigure struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// ProductSales is how much of one product sold over a report's range.
type ProductSales struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int             `json:"qty"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesReport summarises the sales created in [From, To).
type SalesReport struct {
	From            time.Time                `json:"from"`
	To              time.Time                `json:"to"`
	All             SalesFigure              `json:"all"`
	ByType          map[SaleType]SalesFigure `json:"byType"`
	CreditBilled    decimal.Decimal          `json:"creditBilled"`
	CreditCustomers int                      `json:"creditCustomers"` // Distinct accounts billed on credit
	Recovered       decimal.Decimal          `json:"recovered"`
	TopProducts     []ProductSales           `json:"topProducts"`
}
