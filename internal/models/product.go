package models

import "github.com/shopspring/decimal"

// Product is a row of the products table.
type Product struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Location  string          `db:"location"`
	Barcode   string          `db:"barcode"`
	SKU       string          `db:"sku"`
	SalePrice decimal.Decimal `db:"sale_price"`
	Stock     int             `db:"stock"`
	AuditFields
}
