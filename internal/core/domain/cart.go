package domain

import "github.com/shopspring/decimal"

// CartLine is a product snapshot captured when the product was added to the cart.
type CartLine struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Quantity     int             `json:"qty"`
	UnitPrice    decimal.Decimal `json:"customPrice"`  // Editable by the operator after adding
	LineDiscount decimal.Decimal `json:"itemDiscount"` // Subtracted once per unit
	StockAtAdd   int             `json:"stock"`        // Stock ceiling known at add time
}

// LineTotal returns quantity × (unitPrice − lineDiscount).
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Sub(l.LineDiscount).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of lines. Operations on it return new carts.
type Cart []CartLine

// Find returns the index of the line for productID, or -1.
func (c Cart) Find(productID string) int {
	for i, line := range c {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
