package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry as the sales terminal sees it.
type Product struct {
	ProductID string          `json:"productID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Category  string          `json:"category"` // Category name, empty when unassigned
	Location  string          `json:"location"` // Storage location name, empty when unassigned
	Barcode   string          `json:"barcode"`
	SKU       string          `json:"sku"`
	SalePrice decimal.Decimal `json:"salePrice"` // List price, copied into a cart line on add
	Stock     int             `json:"stock"`     // Units currently on hand
	AuditFields
}
