package pricing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LowStockMargin is how close to empty a line may leave stock before it is flagged.
const LowStockMargin = 5

var (
	ErrEmptyCart        = fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	ErrCustomerRequired = fmt.Errorf("%w: select a customer", apperrors.ErrValidation)
	ErrNameRequired     = fmt.Errorf("%w: enter customer name", apperrors.ErrValidation)
	ErrUnderpaid        = fmt.Errorf("%w: payment does not cover the total", apperrors.ErrValidation)
	ErrUnknownSaleType  = fmt.Errorf("%w: unknown sale type", apperrors.ErrValidation)
	ErrInvalidLine      = fmt.Errorf("%w: invalid cart line", apperrors.ErrValidation)
)

// FinalizeInput is the terminal state at the moment the operator completes a sale.
type FinalizeInput struct {
	SaleType        domain.SaleType
	Cart            domain.Cart
	DiscountPercent decimal.Decimal
	CustomerID      string
	CustomerInfo    domain.CustomerInfo
	Tenders         []domain.Tender
	Rates           *Rates // nil uses DefaultRates
}

// Finalized is the outcome of a successful FinalizeSale.
type Finalized struct {
	Payload domain.SalePayload
	Totals  domain.SaleTotals
	Summary domain.TenderSummary
}

// CheckPreconditions runs the sale checks that do not depend on payment, in order,
// returning the first failure.
func CheckPreconditions(in FinalizeInput) error {
	if !in.SaleType.IsValid() {
		return ErrUnknownSaleType
	}
	if len(in.Cart) == 0 {
		return ErrEmptyCart
	}
	if err := ValidateCart(in.Cart); err != nil {
		return err
	}
	if in.SaleType == domain.SalePermanent && strings.TrimSpace(in.CustomerID) == "" {
		return ErrCustomerRequired
	}
	if in.SaleType == domain.SaleTemporary && strings.TrimSpace(in.CustomerInfo.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// ValidateCart rejects lines with a non-positive quantity, a negative price or
// discount, or a discount above the unit price.
func ValidateCart(cart domain.Cart) error {
	for _, line := range cart {
		switch {
		case line.Quantity <= 0:
			return fmt.Errorf("%w: %s quantity must be at least 1", ErrInvalidLine, line.Name)
		case line.UnitPrice.IsNegative():
			return fmt.Errorf("%w: %s price cannot be negative", ErrInvalidLine, line.Name)
		case line.LineDiscount.IsNegative():
			return fmt.Errorf("%w: %s discount cannot be negative", ErrInvalidLine, line.Name)
		case line.LineDiscount.GreaterThan(line.UnitPrice):
			return fmt.Errorf("%w: %s discount exceeds its price", ErrInvalidLine, line.Name)
		}
	}
	return nil
}

// FinalizeSale validates the terminal state and builds the outbound sale payload.
// Checks run in order and the first failure is returned.
func FinalizeSale(in FinalizeInput) (Finalized, error) {
	if err := CheckPreconditions(in); err != nil {
		return Finalized{}, err
	}

	rates := DefaultRates
	if in.Rates != nil {
		rates = *in.Rates
	}
	totals := rates.ComputeTotals(in.Cart, in.DiscountPercent)

	payload := domain.SalePayload{
		Items:           toSaleItems(in.Cart),
		SaleType:        in.SaleType,
		Payments:        []domain.Tender{},
		PaidAmount:      decimal.Zero,
		Subtotal:        totals.Subtotal,
		DiscountPercent: totals.DiscountPercent,
		ServiceCharge:   totals.ServiceCharge,
		Tax:             totals.TaxAmount,
		Total:           totals.GrandTotal,
	}

	var summary domain.TenderSummary
	switch in.SaleType {
	case domain.SaleCash:
		for _, t := range in.Tenders {
			if err := ValidateTender(t); err != nil {
				return Finalized{}, err
			}
		}
		summary = ComputeTenderSummary(in.Tenders, totals.GrandTotal)
		if !summary.Covered() {
			return Finalized{}, fmt.Errorf("%w: %s remaining", ErrUnderpaid, summary.Remaining.StringFixed(2))
		}
		payload.PaidAmount = summary.TotalTendered
	case domain.SalePermanent:
		id := strings.TrimSpace(in.CustomerID)
		payload.CustomerID = &id
		summary = domain.TenderSummary{TotalTendered: decimal.Zero, Remaining: totals.GrandTotal, ChangeDue: decimal.Zero}
	case domain.SaleTemporary:
		info := in.CustomerInfo
		payload.CustomerInfo = &info
		summary = domain.TenderSummary{TotalTendered: decimal.Zero, Remaining: totals.GrandTotal, ChangeDue: decimal.Zero}
	}

	return Finalized{Payload: payload, Totals: totals, Summary: summary}, nil
}

func toSaleItems(cart domain.Cart) []domain.SaleItem {
	items := make([]domain.SaleItem, len(cart))
	for i, line := range cart {
		items[i] = domain.SaleItem{
			ProductID:    line.ProductID,
			Name:         line.Name,
			Quantity:     line.Quantity,
			Price:        line.UnitPrice,
			ItemDiscount: line.LineDiscount,
		}
	}
	return items
}

// DetectLowStock returns the names of lines that leave fewer than LowStockMargin units.
func DetectLowStock(cart domain.Cart) []string {
	var names []string
	for _, line := range cart {
		if line.Quantity > 0 && line.StockAtAdd-line.Quantity < LowStockMargin {
			names = append(names, line.Name)
		}
	}
	return names
}

// ShortReference is the receipt form of a sale id: its last six characters, uppercased.
func ShortReference(saleID string) string {
	if len(saleID) > 6 {
		saleID = saleID[len(saleID)-6:]
	}
	return strings.ToUpper(saleID)
}
