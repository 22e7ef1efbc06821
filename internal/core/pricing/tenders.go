package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrLastTender is returned when removing the only remaining tender.
var ErrLastTender = fmt.Errorf("%w: at least one payment method is required", apperrors.ErrValidation)

var errTenderIndex = errors.New("tender index out of range")

// ResetTenders returns the initial tender list: one blank cash tender.
func ResetTenders() []domain.Tender {
	return []domain.Tender{{Method: domain.MethodCash, Amount: decimal.Zero}}
}

// AddTender appends a blank cash tender.
func AddTender(tenders []domain.Tender) []domain.Tender {
	next := make([]domain.Tender, 0, len(tenders)+1)
	next = append(next, tenders...)
	return append(next, domain.Tender{Method: domain.MethodCash, Amount: decimal.Zero})
}

// UpdateTender replaces the tender at index.
func UpdateTender(tenders []domain.Tender, index int, t domain.Tender) ([]domain.Tender, error) {
	if index < 0 || index >= len(tenders) {
		return tenders, fmt.Errorf("%w: %w", apperrors.ErrValidation, errTenderIndex)
	}
	next := make([]domain.Tender, len(tenders))
	copy(next, tenders)
	next[index] = t
	return next, nil
}

// RemoveTender drops the tender at index, refusing to leave the list empty.
func RemoveTender(tenders []domain.Tender, index int) ([]domain.Tender, error) {
	if index < 0 || index >= len(tenders) {
		return tenders, fmt.Errorf("%w: %w", apperrors.ErrValidation, errTenderIndex)
	}
	if len(tenders) <= 1 {
		return tenders, ErrLastTender
	}
	next := make([]domain.Tender, 0, len(tenders)-1)
	next = append(next, tenders[:index]...)
	return append(next, tenders[index+1:]...), nil
}

// ValidateTender checks method, amount sign and the reference detail.
func ValidateTender(t domain.Tender) error {
	if !t.Method.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, t.Method)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: payment amount cannot be negative", apperrors.ErrValidation)
	}
	if t.Method.RequiresDetail() && strings.TrimSpace(t.Detail) == "" {
		return fmt.Errorf("%w: %s payment requires a reference", apperrors.ErrValidation, t.Method)
	}
	return nil
}

// ComputeTenderSummary totals the tenders against grandTotal.
func ComputeTenderSummary(tenders []domain.Tender, grandTotal decimal.Decimal) domain.TenderSummary {
	paid := decimal.Zero
	for _, t := range tenders {
		paid = paid.Add(t.Amount)
	}
	remaining := grandTotal.Sub(paid)
	change := decimal.Zero
	if remaining.IsNegative() {
		change = remaining.Neg()
	}
	return domain.TenderSummary{
		TotalTendered: paid,
		Remaining:     remaining,
		ChangeDue:     change,
	}
}
