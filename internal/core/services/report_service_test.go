package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_pos_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_SalesReport(t *testing.T) {
	ctx := context.Background()
	sales := new(MockSaleRepository)
	customers := new(MockCustomerRepository)
	svc := services.NewReportService(portsrepo.RepositoryProvider{SaleRepo: sales, CustomerRepo: customers})

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	customerID := "cust-1"
	cash := domain.Sale{SaleID: "c1", SalePayload: domain.SalePayload{
		SaleType: domain.SaleCash,
		Total:    dec("250"),
		Items:    []domain.SaleItem{{ProductID: "soap", Name: "Soap", Quantity: 2, Price: dec("125"), ItemDiscount: dec("0")}},
	}, CreatedAt: from}
	permanent := domain.Sale{SaleID: "p1", SalePayload: domain.SalePayload{
		SaleType:   domain.SalePermanent,
		CustomerID: &customerID,
		Total:      dec("400"),
		PaidAmount: dec("0"),
	}, CreatedAt: from}

	sales.On("ListSales", ctx, portsrepo.SaleFilter{From: &from, To: &to}).Return([]domain.Sale{
		cash, permanent, tempSale("t1", "Ali", "0300", from, "300", "100"),
	}, nil).Once()
	customers.On("SumPaymentsBetween", ctx, from, to).Return(dec("150"), nil).Once()

	report, err := svc.SalesReport(ctx, from, to)

	require.NoError(t, err)
	assert.Equal(t, 3, report.All.Count)
	assert.True(t, report.All.Total.Equal(dec("950")))
	assert.Equal(t, 1, report.ByType[domain.SaleCash].Count)
	assert.True(t, report.CreditBilled.Equal(dec("700")))
	assert.Equal(t, 2, report.CreditCustomers)
	assert.True(t, report.Recovered.Equal(dec("250")), report.Recovered.String())
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "soap", report.TopProducts[0].ProductID)
	sales.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestReportService_SalesReportErrors(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty range", func(t *testing.T) {
		sales := new(MockSaleRepository)
		svc := services.NewReportService(portsrepo.RepositoryProvider{SaleRepo: sales})

		_, err := svc.SalesReport(ctx, from, from)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		sales.AssertNotCalled(t, "ListSales", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		sales := new(MockSaleRepository)
		svc := services.NewReportService(portsrepo.RepositoryProvider{SaleRepo: sales})
		sales.On("ListSales", ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()

		_, err := svc.SalesReport(ctx, from, from.AddDate(0, 0, 1))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrValidation)
	})
}
