package creditledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var base = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func tempSale(id, name, phone, total, paid string, day int) domain.Sale {
	return domain.Sale{
		SaleID: id,
		SalePayload: domain.SalePayload{
			SaleType:     domain.SaleTemporary,
			CustomerInfo: &domain.CustomerInfo{Name: name, Phone: phone},
			Total:        dec(total),
			PaidAmount:   dec(paid),
		},
		CreatedAt: base.AddDate(0, 0, day),
	}
}

func permSale(id, customerID, total, paid string, day int) domain.Sale {
	cid := customerID
	return domain.Sale{
		SaleID: id,
		SalePayload: domain.SalePayload{
			SaleType:   domain.SalePermanent,
			CustomerID: &cid,
			Total:      dec(total),
			PaidAmount: dec(paid),
		},
		CreatedAt: base.AddDate(0, 0, day),
	}
}

func TestAggregateByCustomer_TemporaryExample(t *testing.T) {
	sales := []domain.Sale{
		tempSale("s1", "Ali", "03001234567", "500", "200", 0),
		tempSale("s2", "Ali", "03001234567", "300", "0", 2),
	}

	accounts := AggregateByCustomer(sales, TemporaryIdentity)

	require.Len(t, accounts, 1)
	acc := accounts[0]
	assert.Equal(t, "Ali-03001234567", acc.CustomerKey)
	assert.True(t, dec("800").Equal(acc.TotalBilled))
	assert.True(t, dec("200").Equal(acc.TotalPaid))
	assert.True(t, dec("600").Equal(acc.RemainingDue))
	assert.Equal(t, domain.CreditUnpaid, acc.Status)
	assert.Equal(t, []string{"s2", "s1"}, acc.SaleIDs)
	assert.Equal(t, base.AddDate(0, 0, 2), acc.LastSaleAt)
}

func TestAggregateByCustomer_SkipsUnusableIdentity(t *testing.T) {
	sales := []domain.Sale{
		tempSale("s1", "", "0300", "500", "0", 0),
		tempSale("s2", "   ", "0300", "500", "0", 0),
		permSale("s3", "c1", "100", "0", 0),
		{SaleID: "s4", SalePayload: domain.SalePayload{SaleType: domain.SaleTemporary}},
		tempSale("s5", "ali", "0300", "10", "0", 1),
		tempSale("s6", "Ali", "0300", "10", "0", 1),
	}

	accounts := AggregateByCustomer(sales, TemporaryIdentity)

	require.Len(t, accounts, 2, "names are case sensitive")
	assert.Equal(t, "Ali-0300", accounts[0].CustomerKey)
	assert.Equal(t, "ali-0300", accounts[1].CustomerKey)
}

func TestAggregateByCustomer_OrderIndependentAndIdempotent(t *testing.T) {
	sales := []domain.Sale{
		permSale("a1", "c1", "100", "100", 0),
		permSale("a2", "c1", "250.5", "50", 3),
		permSale("b1", "c2", "75", "0", 1),
		permSale("b2", "c2", "25", "25", 5),
		permSale("c1", "c3", "10", "0", 2),
		tempSale("t1", "Ali", "0300", "999", "0", 9),
	}
	want := AggregateByCustomer(sales, PermanentIdentity)
	require.Len(t, want, 3)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.Sale(nil), sales...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, AggregateByCustomer(shuffled, PermanentIdentity))
	}
	assert.Equal(t, want, AggregateByCustomer(sales, PermanentIdentity))

	assert.Equal(t, "c2", want[0].CustomerKey, "most recent sale first")
	assert.Equal(t, "c1", want[1].CustomerKey)
	assert.Equal(t, "c3", want[2].CustomerKey)
}

func TestAggregateByCustomer_PaidStatus(t *testing.T) {
	accounts := AggregateByCustomer([]domain.Sale{
		permSale("a1", "c1", "100", "100", 0),
		permSale("b1", "c2", "0", "0", 0),
		permSale("c1", "c3", "50", "80", 0),
	}, PermanentIdentity)

	byKey := map[string]domain.CreditAccount{}
	for _, a := range accounts {
		byKey[a.CustomerKey] = a
	}
	assert.Equal(t, domain.CreditPaid, byKey["c1"].Status)
	assert.Equal(t, domain.CreditUnpaid, byKey["c2"].Status, "nothing paid yet")
	assert.True(t, byKey["c3"].RemainingDue.IsZero(), "overpayment floors at zero")
	assert.Equal(t, domain.CreditPaid, byKey["c3"].Status)
}

func TestApplyPayment(t *testing.T) {
	acc := domain.CreditAccount{TotalPaid: dec("200"), RemainingDue: dec("600"), TotalBilled: dec("800")}

	next, err := ApplyPayment(acc, dec("150"))
	require.NoError(t, err)
	assert.True(t, dec("350").Equal(next.TotalPaid))
	assert.True(t, dec("450").Equal(next.RemainingDue))
	assert.Equal(t, domain.CreditUnpaid, next.Status)

	full, err := ApplyPayment(acc, dec("600"))
	require.NoError(t, err)
	assert.True(t, full.RemainingDue.IsZero())
	assert.Equal(t, domain.CreditPaid, full.Status)

	for _, bad := range []string{"0", "-5"} {
		same, err := ApplyPayment(acc, dec(bad))
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, acc, same)
	}

	same, err := ApplyPayment(acc, dec("600.01"))
	assert.ErrorIs(t, err, ErrExceedsDue)
	assert.Equal(t, acc, same)
}

func TestApplyPayment_NeverNegative(t *testing.T) {
	acc := domain.CreditAccount{TotalPaid: decimal.Zero, RemainingDue: dec("10")}
	for _, amt := range []string{"0.01", "3", "9.99", "10", "10.01", "1000"} {
		next, err := ApplyPayment(acc, dec(amt))
		if err != nil {
			assert.ErrorIs(t, err, ErrExceedsDue)
			continue
		}
		assert.False(t, next.RemainingDue.IsNegative(), amt)
	}
}

func TestPendingPayment(t *testing.T) {
	acc := domain.CreditAccount{CustomerKey: "c1", TotalPaid: dec("100"), RemainingDue: dec("400"), SaleIDs: []string{"s1"}}

	p, err := BeginPayment(acc, dec("100"))
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(p.Optimistic().RemainingDue))

	reconciled := p.Reconcile(dec("250"), dec("250"))
	assert.True(t, dec("250").Equal(reconciled.TotalPaid))
	assert.True(t, dec("250").Equal(reconciled.RemainingDue))

	assert.Equal(t, acc, p.Rollback())

	_, err = BeginPayment(acc, dec("500"))
	assert.ErrorIs(t, err, ErrExceedsDue)
}

func TestAllocatePayment(t *testing.T) {
	sales := []domain.Sale{
		tempSale("s2", "Ali", "0300", "300", "0", 2),
		tempSale("s1", "Ali", "0300", "500", "200", 0),
		tempSale("s0", "Ali", "0300", "100", "100", -1),
	}

	allocs := AllocatePayment(sales, dec("350"))

	require.Len(t, allocs, 2)
	assert.Equal(t, "s1", allocs[0].SaleID)
	assert.True(t, dec("300").Equal(allocs[0].Amount))
	assert.True(t, dec("500").Equal(allocs[0].PaidAmount))
	assert.True(t, allocs[0].Remaining.IsZero())
	assert.Equal(t, "s2", allocs[1].SaleID)
	assert.True(t, dec("50").Equal(allocs[1].Amount))
	assert.True(t, dec("250").Equal(allocs[1].Remaining))

	total := decimal.Zero
	for _, a := range AllocatePayment(sales, dec("10000")) {
		total = total.Add(a.Amount)
	}
	assert.True(t, dec("600").Equal(total))
}

func TestBuildStatementLineItems(t *testing.T) {
	sales := []domain.Sale{
		{SalePayload: domain.SalePayload{Items: []domain.SaleItem{
			{Name: "Soap", Quantity: 2, Price: dec("100")},
			{Name: "Rice", Quantity: 1, Price: dec("350")},
		}}},
		{SalePayload: domain.SalePayload{Items: []domain.SaleItem{
			{Name: "Soap", Quantity: 1, Price: dec("90")},
		}}},
	}

	lines := BuildStatementLineItems(sales)

	require.Len(t, lines, 2)
	assert.Equal(t, "Soap", lines[0].Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, dec("100").Equal(lines[0].Price))
	assert.True(t, dec("290").Equal(lines[0].Amount))
	assert.Equal(t, "Rice", lines[1].Name)
}

func TestRecoveredInPeriod(t *testing.T) {
	assert.True(t, dec("300").Equal(RecoveredInPeriod(dec("800"), dec("500"))))
	assert.True(t, RecoveredInPeriod(dec("100"), dec("500")).IsZero())
}

func TestBuildStatement(t *testing.T) {
	customer := domain.Customer{CustomerID: "c1", RemainingDue: dec("150")}
	st := BuildStatement(customer, []domain.Sale{permSale("a", "c1", "100", "0", 0), permSale("b", "c1", "200", "0", 1)})

	assert.Equal(t, 2, st.ReceiptCount)
	assert.True(t, dec("300").Equal(st.PeriodBilled))
	assert.True(t, dec("150").Equal(st.Recovered))
	assert.NotNil(t, st.Lines)
}

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"0300-1234567":   "923001234567",
		"+92 300 123456": "92300123456",
		"923001234567":   "923001234567",
		"3001234567":     "923001234567",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestBuildReminder(t *testing.T) {
	c := domain.Customer{Name: "Bilal", Phone: "0300-1234567", RemainingDue: dec("12500")}

	r := BuildReminder(c, Shop{Name: "Corner Store", Phone: "042-111"})

	assert.Equal(t, "923001234567", r.Phone)
	assert.True(t, dec("75").Equal(r.UsedPercent))
	assert.Contains(t, r.Message, "Dear Bilal,")
	assert.Contains(t, r.Message, "*Corner Store*")
	assert.Contains(t, r.Message, "RS 12,500")
	assert.Contains(t, r.Message, "RS 50,000")
	assert.Contains(t, r.Message, "75.0%")
	assert.Contains(t, r.Message, "Contact: 042-111")
	assert.Contains(t, r.Link, "https://wa.me/923001234567?text=Dear%20Bilal")
}
