package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table. Items and payments live in their own tables.
type Sale struct {
	SaleID          string          `db:"sale_id"`
	SaleType        string          `db:"sale_type"`
	CustomerID      sql.NullString  `db:"customer_id"`   // Set for permanent credit sales
	CustomerName    sql.NullString  `db:"customer_name"` // Set for temporary credit sales
	CustomerPhone   sql.NullString  `db:"customer_phone"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	ServiceCharge   decimal.Decimal `db:"service_charge"`
	Tax             decimal.Decimal `db:"tax"`
	Total           decimal.Decimal `db:"total"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`
	AuditFields
}

// SaleItem is one line of a sale.
type SaleItem struct {
	SaleID       string          `db:"sale_id"`
	LineNo       int             `db:"line_no"`
	ProductID    string          `db:"product_id"`
	Name         string          `db:"name"`
	Quantity     int             `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
	ItemDiscount decimal.Decimal `db:"item_discount"`
}

// SalePayment is one tender applied to a cash sale.
type SalePayment struct {
	SaleID string          `db:"sale_id"`
	LineNo int             `db:"line_no"`
	Method string          `db:"method"`
	Amount decimal.Decimal `db:"amount"`
	Detail string          `db:"detail"`
}
