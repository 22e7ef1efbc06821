package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType distinguishes how a sale is settled.
type SaleType string

const (
	SaleCash      SaleType = "cash"
	SalePermanent SaleType = "permanent" // Billed to a registered credit customer
	SaleTemporary SaleType = "temporary" // Billed to an ad hoc name/phone
)

// IsValid reports whether t is a known sale type.
func (t SaleType) IsValid() bool {
	switch t {
	case SaleCash, SalePermanent, SaleTemporary:
		return true
	}
	return false
}

// IsCredit reports whether the sale skips tender collection.
func (t SaleType) IsCredit() bool {
	return t == SalePermanent || t == SaleTemporary
}

// SaleTotals is derived from a cart and a global discount. It is never stored on its own.
type SaleTotals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	ServiceCharge   decimal.Decimal `json:"serviceCharge"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	TaxAmount       decimal.Decimal `json:"tax"`
	GrandTotal      decimal.Decimal `json:"total"`
}

// CustomerInfo identifies a temporary credit customer.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SaleItem is one line of a recorded sale.
type SaleItem struct {
	ProductID    string          `json:"product"`
	Name         string          `json:"name"`
	Quantity     int             `json:"qty"`
	Price        decimal.Decimal `json:"price"`
	ItemDiscount decimal.Decimal `json:"itemDiscount"`
}

// SalePayload is the outbound sale creation request built at checkout.
type SalePayload struct {
	Items           []SaleItem      `json:"items"`
	CustomerID      *string         `json:"customer"`
	CustomerInfo    *CustomerInfo   `json:"customerInfo"`
	SaleType        SaleType        `json:"saleType"`
	Payments        []Tender        `json:"payments"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	ServiceCharge   decimal.Decimal `json:"serviceCharge"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// Sale is a persisted sale record.
type Sale struct {
	SaleID string `json:"id"`
	SalePayload
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// Remaining is what is still owed on this sale, floored at zero.
func (s Sale) Remaining() decimal.Decimal {
	rem := s.Total.Sub(s.PaidAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}
