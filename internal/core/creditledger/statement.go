package creditledger

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildStatementLineItems merges items with the same name across sales, in first-seen order.
// Amount is quantity × price; the price shown is the first occurrence's.
func BuildStatementLineItems(sales []domain.Sale) []domain.StatementLine {
	index := make(map[string]int)
	var lines []domain.StatementLine
	for _, sale := range sales {
		for _, item := range sale.Items {
			amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if i, ok := index[item.Name]; ok {
				lines[i].Quantity += item.Quantity
				lines[i].Amount = lines[i].Amount.Add(amount)
				continue
			}
			index[item.Name] = len(lines)
			lines = append(lines, domain.StatementLine{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Amount:   amount,
			})
		}
	}
	return lines
}

// PeriodBilled sums sale totals.
func PeriodBilled(sales []domain.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}

// RecoveredInPeriod estimates how much of the period's billing has been paid back.
// Payments are not matched to the period, so older debt paid down inside the range
// is not separated out.
func RecoveredInPeriod(periodBilled, currentDue decimal.Decimal) decimal.Decimal {
	return floor(periodBilled.Sub(currentDue))
}

// BuildStatement assembles a consolidated statement for customer over the given sales.
func BuildStatement(customer domain.Customer, sales []domain.Sale) domain.Statement {
	billed := PeriodBilled(sales)
	lines := BuildStatementLineItems(sales)
	if lines == nil {
		lines = []domain.StatementLine{}
	}
	return domain.Statement{
		Customer:     customer,
		ReceiptCount: len(sales),
		Lines:        lines,
		PeriodBilled: billed,
		Recovered:    RecoveredInPeriod(billed, customer.RemainingDue),
		RemainingDue: customer.RemainingDue,
	}
}
