package domain

import "github.com/shopspring/decimal"

// PaymentMethod identifies the instrument used for a tender.
type PaymentMethod string

const (
	MethodCash      PaymentMethod = "cash"
	MethodCard      PaymentMethod = "card"
	MethodUPI       PaymentMethod = "upi"
	MethodEasypaisa PaymentMethod = "easypaisa"
	MethodJazzCash  PaymentMethod = "jazzcash"
	MethodBank      PaymentMethod = "bank"
)

// PaymentMethods lists every accepted method in display order.
var PaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodUPI, MethodEasypaisa, MethodJazzCash, MethodBank}

// IsValid reports whether m is one of the known methods.
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// RequiresDetail reports whether a reference (card last 4, mobile number, bank ref) is needed.
func (m PaymentMethod) RequiresDetail() bool {
	return m != MethodCash
}

// Tender is one payment instrument applied toward a cash sale.
type Tender struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Detail string          `json:"detail"`
}

// TenderSummary is derived from the tenders and the grand total.
type TenderSummary struct {
	TotalTendered decimal.Decimal `json:"totalTendered"`
	Remaining     decimal.Decimal `json:"remaining"` // Signed; negative means overpaid
	ChangeDue     decimal.Decimal `json:"changeDue"`
}

// DisplayRemaining is the remaining balance clamped at zero.
func (s TenderSummary) DisplayRemaining() decimal.Decimal {
	if s.Remaining.IsNegative() {
		return decimal.Zero
	}
	return s.Remaining
}

// Covered reports whether the tenders pay the full total.
func (s TenderSummary) Covered() bool {
	return !s.Remaining.IsPositive()
}
