package pricing

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rates are the shop-wide charges applied on top of the cart.
type Rates struct {
	ServiceCharge decimal.Decimal
	TaxRate       decimal.Decimal
}

// DefaultRates is a fixed 20 unit service charge and 5% tax.
var DefaultRates = Rates{
	ServiceCharge: decimal.NewFromInt(20),
	TaxRate:       decimal.RequireFromString("0.05"),
}

// Subtotal sums line totals.
func Subtotal(cart domain.Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range cart {
		sum = sum.Add(line.LineTotal())
	}
	return sum
}

// ComputeTotals derives the sale figures using DefaultRates.
func ComputeTotals(cart domain.Cart, discountPercent decimal.Decimal) domain.SaleTotals {
	return DefaultRates.ComputeTotals(cart, discountPercent)
}

// ComputeTotals derives subtotal, discount, tax and grand total. No rounding is applied.
func (r Rates) ComputeTotals(cart domain.Cart, discountPercent decimal.Decimal) domain.SaleTotals {
	subtotal := Subtotal(cart)
	discount := subtotal.Mul(discountPercent).Div(hundred)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(r.TaxRate)

	return domain.SaleTotals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		ServiceCharge:   r.ServiceCharge,
		TaxRate:         r.TaxRate,
		TaxAmount:       tax,
		GrandTotal:      taxable.Add(r.ServiceCharge).Add(tax),
	}
}
