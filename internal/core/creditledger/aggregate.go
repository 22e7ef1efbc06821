// Package creditledger derives per-customer credit standing from sale history
// and applies ledger payments against it.
package creditledger

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Identity is who a sale is billed to.
type Identity struct {
	Key   string
	Name  string
	Phone string
}

// IdentityFunc resolves the account a sale belongs to. ok is false for sales that
// must be left out of aggregation.
type IdentityFunc func(sale domain.Sale) (id Identity, ok bool)

// PermanentIdentity keys permanent credit sales by the linked customer id.
func PermanentIdentity(sale domain.Sale) (Identity, bool) {
	if sale.SaleType != domain.SalePermanent || sale.CustomerID == nil || strings.TrimSpace(*sale.CustomerID) == "" {
		return Identity{}, false
	}
	id := Identity{Key: *sale.CustomerID}
	if sale.CustomerInfo != nil {
		id.Name = sale.CustomerInfo.Name
		id.Phone = sale.CustomerInfo.Phone
	}
	return id, true
}

// TemporaryIdentity keys temporary credit sales by name and phone, exactly as typed.
// Sales without a name have no usable identity.
func TemporaryIdentity(sale domain.Sale) (Identity, bool) {
	if sale.SaleType != domain.SaleTemporary || sale.CustomerInfo == nil {
		return Identity{}, false
	}
	info := sale.CustomerInfo
	if strings.TrimSpace(info.Name) == "" {
		return Identity{}, false
	}
	return Identity{Key: info.Name + "-" + info.Phone, Name: info.Name, Phone: info.Phone}, true
}

type saleRef struct {
	id string
	at time.Time
}

// AggregateByCustomer groups sales into credit accounts, most recent sale first.
func AggregateByCustomer(sales []domain.Sale, identity IdentityFunc) []domain.CreditAccount {
	accounts := make(map[string]*domain.CreditAccount)
	refs := make(map[string][]saleRef)

	for _, sale := range sales {
		id, ok := identity(sale)
		if !ok {
			continue
		}
		acc, seen := accounts[id.Key]
		if !seen {
			acc = &domain.CreditAccount{
				CustomerKey: id.Key,
				Name:        id.Name,
				Phone:       id.Phone,
				TotalBilled: decimal.Zero,
				TotalPaid:   decimal.Zero,
			}
			accounts[id.Key] = acc
		}
		acc.TotalBilled = acc.TotalBilled.Add(sale.Total)
		acc.TotalPaid = acc.TotalPaid.Add(sale.PaidAmount)
		if sale.CreatedAt.After(acc.LastSaleAt) {
			acc.LastSaleAt = sale.CreatedAt
		}
		if acc.Name == "" && id.Name != "" {
			acc.Name, acc.Phone = id.Name, id.Phone
		}
		refs[id.Key] = append(refs[id.Key], saleRef{id: sale.SaleID, at: sale.CreatedAt})
	}

	out := make([]domain.CreditAccount, 0, len(accounts))
	for key, acc := range accounts {
		r := refs[key]
		sort.Slice(r, func(i, j int) bool {
			if !r[i].at.Equal(r[j].at) {
				return r[i].at.After(r[j].at)
			}
			return r[i].id < r[j].id
		})
		acc.SaleIDs = make([]string, len(r))
		for i, ref := range r {
			acc.SaleIDs[i] = ref.id
		}
		out = append(out, settle(*acc))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastSaleAt.Equal(out[j].LastSaleAt) {
			return out[i].LastSaleAt.After(out[j].LastSaleAt)
		}
		return out[i].CustomerKey < out[j].CustomerKey
	})
	return out
}

// AccountFromCustomer views a permanent customer's stored ledger as a credit account.
func AccountFromCustomer(c domain.Customer) domain.CreditAccount {
	return settleStatus(domain.CreditAccount{
		CustomerKey:  c.CustomerID,
		Name:         c.Name,
		Phone:        c.Phone,
		TotalBilled:  c.TotalPaid.Add(c.RemainingDue),
		TotalPaid:    c.TotalPaid,
		RemainingDue: c.RemainingDue,
	})
}

// settle recomputes remaining due from billed and paid.
func settle(acc domain.CreditAccount) domain.CreditAccount {
	acc.RemainingDue = floor(acc.TotalBilled.Sub(acc.TotalPaid))
	return settleStatus(acc)
}

func settleStatus(acc domain.CreditAccount) domain.CreditAccount {
	if acc.RemainingDue.IsZero() && acc.TotalPaid.IsPositive() {
		acc.Status = domain.CreditPaid
	} else {
		acc.Status = domain.CreditUnpaid
	}
	return acc
}

func floor(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
