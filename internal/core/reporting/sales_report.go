// Package reporting summarises recorded sales over a date range.
package reporting

import (
	"sort"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopProducts is how many best sellers a report lists.
const DefaultTopProducts = 5

// BuildSalesReport summarises sales created in [from, to). ledgerPaid is what registered
// credit customers paid into their ledger over the same range.
//
// Recovered adds ledgerPaid to what has been paid back on the range's temporary
// credit sales, since those carry their own paid amounts.
func BuildSalesReport(from, to time.Time, sales []domain.Sale, ledgerPaid decimal.Decimal, topN int) domain.SalesReport {
	report := domain.SalesReport{
		From: from,
		To:   to,
		All:  domain.SalesFigure{Total: decimal.Zero},
		ByType: map[domain.SaleType]domain.SalesFigure{
			domain.SaleCash:      {Total: decimal.Zero},
			domain.SalePermanent: {Total: decimal.Zero},
			domain.SaleTemporary: {Total: decimal.Zero},
		},
	}

	var credit []domain.Sale
	for _, sale := range sales {
		report.All.Count++
		report.All.Total = report.All.Total.Add(sale.Total)
		fig := report.ByType[sale.SaleType]
		fig.Count++
		fig.Total = fig.Total.Add(sale.Total)
		report.ByType[sale.SaleType] = fig
		if sale.SaleType.IsCredit() {
			credit = append(credit, sale)
		}
	}
	report.CreditBilled = creditledger.PeriodBilled(credit)

	permanent := creditledger.AggregateByCustomer(credit, creditledger.PermanentIdentity)
	temporary := creditledger.AggregateByCustomer(credit, creditledger.TemporaryIdentity)
	report.CreditCustomers = len(permanent) + len(temporary)

	tempBilled, tempDue := decimal.Zero, decimal.Zero
	for _, acc := range temporary {
		tempBilled = tempBilled.Add(acc.TotalBilled)
		tempDue = tempDue.Add(acc.RemainingDue)
	}
	report.Recovered = creditledger.RecoveredInPeriod(tempBilled, tempDue).Add(ledgerPaid)

	report.TopProducts = TopProducts(sales, topN)
	return report
}

// TopProducts ranks products by units sold, then by revenue. Revenue is net of
// per-unit item discounts.
func TopProducts(sales []domain.Sale, n int) []domain.ProductSales {
	index := make(map[string]int)
	var ranked []domain.ProductSales
	for _, sale := range sales {
		for _, item := range sale.Items {
			key := item.ProductID
			if key == "" {
				key = item.Name
			}
			revenue := item.Price.Sub(item.ItemDiscount).Mul(decimal.NewFromInt(int64(item.Quantity)))
			if i, ok := index[key]; ok {
				ranked[i].Quantity += item.Quantity
				ranked[i].Revenue = ranked[i].Revenue.Add(revenue)
				continue
			}
			index[key] = len(ranked)
			ranked = append(ranked, domain.ProductSales{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Revenue:   revenue,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []domain.ProductSales{}
	}
	return ranked
}
