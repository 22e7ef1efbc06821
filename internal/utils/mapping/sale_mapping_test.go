package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleMapping_CreditCustomerColumns(t *testing.T) {
	id := "c1"
	permanent := domain.Sale{
		SaleID:      "s1",
		SalePayload: domain.SalePayload{SaleType: domain.SalePermanent, CustomerID: &id},
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		CreatedBy:   "owner",
	}
	m, items, payments := ToModelSale(permanent)
	assert.True(t, m.CustomerID.Valid)
	assert.False(t, m.CustomerName.Valid)
	assert.Empty(t, items)
	assert.Empty(t, payments)
	assert.Equal(t, "owner", m.LastUpdatedBy)

	back := ToDomainSale(m, items, payments)
	require.NotNil(t, back.CustomerID)
	assert.Equal(t, "c1", *back.CustomerID)
	assert.Nil(t, back.CustomerInfo)
}

func TestSaleMapping_LinesKeepOrder(t *testing.T) {
	sale := domain.Sale{
		SaleID: "s2",
		SalePayload: domain.SalePayload{
			SaleType:     domain.SaleTemporary,
			CustomerInfo: &domain.CustomerInfo{Name: "Ali"},
			Items: []domain.SaleItem{
				{ProductID: "p1", Name: "Tea", Quantity: 2, Price: decimal.NewFromInt(50)},
				{ProductID: "p2", Name: "Rice", Quantity: 1, Price: decimal.NewFromInt(120)},
			},
		},
	}
	m, items, _ := ToModelSale(sale)
	assert.Equal(t, 1, items[0].LineNo)
	assert.Equal(t, 2, items[1].LineNo)
	assert.False(t, m.CustomerPhone.Valid)

	back := ToDomainSale(m, items, nil)
	require.NotNil(t, back.CustomerInfo)
	assert.Equal(t, "Ali", back.CustomerInfo.Name)
	assert.Equal(t, "Rice", back.Items[1].Name)
	assert.Empty(t, back.Payments)
}
