package creditledger

import (
	"fmt"
	"sort"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = fmt.Errorf("%w: enter valid amount", apperrors.ErrValidation)
	ErrExceedsDue    = fmt.Errorf("%w: amount exceeds due", apperrors.ErrValidation)
)

// ValidatePayment checks amount against what the account still owes.
func ValidatePayment(acc domain.CreditAccount, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(acc.RemainingDue) {
		return ErrExceedsDue
	}
	return nil
}

// ApplyPayment returns acc with amount moved from remaining due to paid.
func ApplyPayment(acc domain.CreditAccount, amount decimal.Decimal) (domain.CreditAccount, error) {
	if err := ValidatePayment(acc, amount); err != nil {
		return acc, err
	}
	next := acc
	next.SaleIDs = append([]string(nil), acc.SaleIDs...)
	next.TotalPaid = acc.TotalPaid.Add(amount)
	next.RemainingDue = floor(acc.RemainingDue.Sub(amount))
	return settleStatus(next), nil
}

// PendingPayment is a payment applied locally while the store confirms it.
type PendingPayment struct {
	Amount     decimal.Decimal
	before     domain.CreditAccount
	optimistic domain.CreditAccount
}

// BeginPayment validates and applies amount optimistically, keeping the prior snapshot.
func BeginPayment(acc domain.CreditAccount, amount decimal.Decimal) (*PendingPayment, error) {
	next, err := ApplyPayment(acc, amount)
	if err != nil {
		return nil, err
	}
	before := acc
	before.SaleIDs = append([]string(nil), acc.SaleIDs...)
	return &PendingPayment{Amount: amount, before: before, optimistic: next}, nil
}

// Optimistic is the account as it looks once the payment lands.
func (p *PendingPayment) Optimistic() domain.CreditAccount {
	return p.optimistic
}

// Reconcile replaces the optimistic figures with the ones the store reported.
func (p *PendingPayment) Reconcile(totalPaid, remainingDue decimal.Decimal) domain.CreditAccount {
	acc := p.optimistic
	acc.TotalPaid = totalPaid
	acc.RemainingDue = floor(remainingDue)
	return settleStatus(acc)
}

// Rollback returns the account exactly as it was before the payment.
func (p *PendingPayment) Rollback() domain.CreditAccount {
	return p.before
}

// SaleAllocation is the share of a payment applied to one sale.
type SaleAllocation struct {
	SaleID     string          `json:"saleId"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paidAmount"` // Sale's paid amount after the allocation
	Remaining  decimal.Decimal `json:"remainingDue"`
}

// AllocatePayment spreads amount over open sales, oldest first. The total allocated
// never exceeds amount and no sale receives more than it still owes.
func AllocatePayment(sales []domain.Sale, amount decimal.Decimal) []SaleAllocation {
	open := make([]domain.Sale, 0, len(sales))
	for _, s := range sales {
		if s.Remaining().IsPositive() {
			open = append(open, s)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		if !open[i].CreatedAt.Equal(open[j].CreatedAt) {
			return open[i].CreatedAt.Before(open[j].CreatedAt)
		}
		return open[i].SaleID < open[j].SaleID
	})

	left := amount
	var out []SaleAllocation
	for _, s := range open {
		if !left.IsPositive() {
			break
		}
		share := decimal.Min(left, s.Remaining())
		paid := s.PaidAmount.Add(share)
		out = append(out, SaleAllocation{
			SaleID:     s.SaleID,
			Amount:     share,
			PaidAmount: paid,
			Remaining:  floor(s.Total.Sub(paid)),
		})
		left = left.Sub(share)
	}
	return out
}
