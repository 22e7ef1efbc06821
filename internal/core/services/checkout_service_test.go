package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/core/pricing"
	"github.com/SscSPs/shop_pos_app/internal/core/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	products  *MockProductRepository
	sales     *MockSaleRepository
	customers *MockCustomerRepository
	tx        *MockTxManager
	events    *MockEventTracker
	service   portssvc.CheckoutSvcFacade
	now       time.Time
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.products = new(MockProductRepository)
	suite.sales = new(MockSaleRepository)
	suite.customers = new(MockCustomerRepository)
	suite.tx = new(MockTxManager)
	suite.events = new(MockEventTracker)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	suite.service = services.NewCheckoutService(portsrepo.RepositoryProvider{
		ProductRepo:  suite.products,
		SaleRepo:     suite.sales,
		CustomerRepo: suite.customers,
		TxManager:    suite.tx,
	},
		services.WithCheckoutEvents(suite.events),
		services.WithCheckoutClock(func() time.Time { return suite.now }),
	)
}

func soap(stock int) domain.Product {
	return domain.Product{ProductID: "p-soap", Name: "Soap", SalePrice: dec("100"), Stock: stock}
}

func soapCart() domain.Cart {
	return domain.Cart{{ProductID: "p-soap", Name: "Soap", Quantity: 2, UnitPrice: dec("100"), StockAtAdd: 6}}
}

func (suite *CheckoutServiceTestSuite) expectTx() {
	suite.tx.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.tx.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *CheckoutServiceTestSuite) assertMocks() {
	suite.products.AssertExpectations(suite.T())
	suite.sales.AssertExpectations(suite.T())
	suite.customers.AssertExpectations(suite.T())
	suite.tx.AssertExpectations(suite.T())
	suite.events.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestAddToCart_Success() {
	ctx := context.Background()
	p := soap(3)
	suite.products.On("FindProductByID", ctx, "p-soap").Return(&p, nil).Once()

	cart, err := suite.service.AddToCart(ctx, dto.AddToCartRequest{ProductID: "p-soap"})

	suite.Require().NoError(err)
	suite.Require().Len(cart, 1)
	suite.Equal(1, cart[0].Quantity)
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestAddToCart_NotFound() {
	ctx := context.Background()
	suite.products.On("FindProductByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddToCart(ctx, dto.AddToCartRequest{ProductID: "nope"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestUpdateQuantity_ExceedsStock() {
	ctx := context.Background()
	suite.products.On("FindProductsByIDs", ctx, []string{"p-soap"}).
		Return(map[string]domain.Product{"p-soap": soap(3)}, nil).Once()

	_, err := suite.service.UpdateQuantity(ctx, "p-soap", dto.UpdateQuantityRequest{Cart: soapCart(), Quantity: 4})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "only 3 in stock")
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestUpdateLine_NotInCart() {
	_, err := suite.service.UpdateLine(context.Background(), "p-tea", dto.UpdateLineRequest{Cart: soapCart(), Field: "customPrice", Value: "5"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestQuote() {
	resp, err := suite.service.Quote(context.Background(), dto.QuoteRequest{
		SaleType:        domain.SaleCash,
		Cart:            soapCart(),
		DiscountPercent: dec("10"),
		Tenders:         []domain.Tender{{Method: domain.MethodCash, Amount: dec("250")}},
	})

	suite.Require().NoError(err)
	suite.True(resp.Totals.GrandTotal.Equal(dec("209")))
	suite.True(resp.Summary.ChangeDue.Equal(dec("41")))
	suite.True(resp.DisplayRemaining.IsZero())
	suite.True(resp.CanSubmit)
	suite.Equal([]string{"Soap"}, resp.LowStock)
}

func (suite *CheckoutServiceTestSuite) TestQuote_CannotSubmitWithoutCardReference() {
	resp, err := suite.service.Quote(context.Background(), dto.QuoteRequest{
		Cart:    soapCart(),
		Tenders: []domain.Tender{{Method: domain.MethodCard, Amount: dec("500")}},
	})

	suite.Require().NoError(err)
	suite.False(resp.CanSubmit)
}

func (suite *CheckoutServiceTestSuite) TestQuote_CreditSaleNeedsCustomer() {
	ctx := context.Background()

	resp, err := suite.service.Quote(ctx, dto.QuoteRequest{SaleType: domain.SalePermanent, Cart: soapCart()})
	suite.Require().NoError(err)
	suite.False(resp.CanSubmit)
	suite.Contains(resp.Blocker, "select a customer")

	resp, err = suite.service.Quote(ctx, dto.QuoteRequest{SaleType: domain.SalePermanent, Cart: soapCart(), CustomerID: "cust-1"})
	suite.Require().NoError(err)
	suite.True(resp.CanSubmit)
	suite.Empty(resp.Blocker)

	resp, err = suite.service.Quote(ctx, dto.QuoteRequest{
		SaleType:     domain.SaleTemporary,
		Cart:         soapCart(),
		CustomerInfo: &domain.CustomerInfo{Name: "  ", Phone: "0300"},
	})
	suite.Require().NoError(err)
	suite.False(resp.CanSubmit)
	suite.Contains(resp.Blocker, "enter customer name")
}

func (suite *CheckoutServiceTestSuite) TestQuote_InvalidLineCannotSubmit() {
	cart := soapCart()
	cart[0].UnitPrice = dec("-100")
	resp, err := suite.service.Quote(context.Background(), dto.QuoteRequest{
		Cart:    cart,
		Tenders: pricing.ResetTenders(),
	})

	suite.Require().NoError(err)
	suite.False(resp.CanSubmit)
	suite.Contains(resp.Blocker, "price cannot be negative")
}

func (suite *CheckoutServiceTestSuite) TestCheckout_RejectsNegativeQuantity() {
	cart := soapCart()
	cart[0].Quantity = -2
	resp, err := suite.service.Checkout(context.Background(), dto.CheckoutRequest{
		SaleType: domain.SaleCash,
		Cart:     cart,
		Tenders:  []domain.Tender{{Method: domain.MethodCash, Amount: dec("500")}},
	}, "owner")

	suite.Nil(resp)
	suite.ErrorIs(err, pricing.ErrInvalidLine)
	suite.tx.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestQuote_RejectsDiscountOver100() {
	_, err := suite.service.Quote(context.Background(), dto.QuoteRequest{Cart: soapCart(), DiscountPercent: dec("101")})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestEditTenders() {
	ctx := context.Background()

	resp, err := suite.service.EditTenders(ctx, dto.EditTendersRequest{Action: dto.TenderAdd, GrandTotal: dec("100")})
	suite.Require().NoError(err)
	suite.Len(resp.Tenders, 2)

	_, err = suite.service.EditTenders(ctx, dto.EditTendersRequest{Action: dto.TenderRemove, Tenders: pricing.ResetTenders()})
	suite.ErrorIs(err, pricing.ErrLastTender)

	_, err = suite.service.EditTenders(ctx, dto.EditTendersRequest{Action: dto.TenderUpdate, Tenders: pricing.ResetTenders()})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_CashSuccess() {
	ctx := context.Background()
	userID := "owner"
	suite.expectTx()
	suite.products.On("FindProductsByIDsForUpdate", ctx, mock.Anything, []string{"p-soap"}).
		Return(map[string]domain.Product{"p-soap": soap(6)}, nil).Once()
	suite.products.On("DecrementStockInTx", ctx, mock.Anything, map[string]int{"p-soap": 2}, userID, suite.now).Return(nil).Once()
	suite.sales.On("SaveSaleInTx", ctx, mock.Anything, mock.MatchedBy(func(s domain.Sale) bool {
		return s.SaleType == domain.SaleCash &&
			s.Total.Equal(dec("209")) &&
			s.PaidAmount.Equal(dec("250")) &&
			len(s.Payments) == 1 &&
			s.CreatedAt.Equal(suite.now) &&
			s.CreatedBy == userID
	})).Return(nil).Once()
	suite.tx.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.events.On("Enqueue", userID, "sale_completed", mock.Anything).Once()

	resp, err := suite.service.Checkout(ctx, dto.CheckoutRequest{
		SaleType:        domain.SaleCash,
		Cart:            soapCart(),
		DiscountPercent: dec("10"),
		Tenders: []domain.Tender{
			{Method: domain.MethodCash, Amount: dec("250")},
			{Method: domain.MethodCash, Amount: dec("0")},
		},
	}, userID)

	suite.Require().NoError(err)
	suite.Equal(pricing.ShortReference(resp.Sale.SaleID), resp.Reference)
	suite.Len(resp.Reference, 6)
	suite.True(resp.ChangeDue.Equal(dec("41")))
	suite.Empty(resp.Cart)
	suite.Equal(pricing.ResetTenders(), resp.Tenders)
	suite.Equal([]string{"Soap"}, resp.LowStock)
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestCheckout_PermanentAddsToCustomerBalance() {
	ctx := context.Background()
	userID := "owner"
	customer := &domain.Customer{CustomerID: "c1", TotalPaid: dec("50"), RemainingDue: dec("100")}
	suite.expectTx()
	suite.products.On("FindProductsByIDsForUpdate", ctx, mock.Anything, []string{"p-soap"}).
		Return(map[string]domain.Product{"p-soap": soap(6)}, nil).Once()
	suite.customers.On("FindCustomerByIDForUpdate", ctx, mock.Anything, "c1").Return(customer, nil).Once()
	suite.customers.On("UpdateBalanceInTx", ctx, mock.Anything, "c1", decEq("50"), decEq("330"), userID, suite.now).Return(nil).Once()
	suite.products.On("DecrementStockInTx", ctx, mock.Anything, mock.Anything, userID, suite.now).Return(nil).Once()
	suite.sales.On("SaveSaleInTx", ctx, mock.Anything, mock.MatchedBy(func(s domain.Sale) bool {
		return s.CustomerID != nil && *s.CustomerID == "c1" && s.PaidAmount.IsZero() && len(s.Payments) == 0
	})).Return(nil).Once()
	suite.tx.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.events.On("Enqueue", userID, "sale_completed", mock.Anything).Once()

	resp, err := suite.service.Checkout(ctx, dto.CheckoutRequest{
		SaleType:   domain.SalePermanent,
		Cart:       soapCart(),
		CustomerID: "c1",
	}, userID)

	suite.Require().NoError(err)
	suite.True(resp.Sale.Total.Equal(dec("230")))
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestCheckout_StockChangedSinceQuote() {
	ctx := context.Background()
	suite.expectTx()
	suite.products.On("FindProductsByIDsForUpdate", ctx, mock.Anything, []string{"p-soap"}).
		Return(map[string]domain.Product{"p-soap": soap(1)}, nil).Once()

	resp, err := suite.service.Checkout(ctx, dto.CheckoutRequest{
		SaleType: domain.SaleCash,
		Cart:     soapCart(),
		Tenders:  []domain.Tender{{Method: domain.MethodCash, Amount: dec("500")}},
	}, "owner")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "only 1 Soap(s) available")
	suite.sales.AssertNotCalled(suite.T(), "SaveSaleInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.tx.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestCheckout_SaveFailure() {
	ctx := context.Background()
	suite.expectTx()
	suite.products.On("FindProductsByIDsForUpdate", ctx, mock.Anything, mock.Anything).
		Return(map[string]domain.Product{"p-soap": soap(6)}, nil).Once()
	suite.products.On("DecrementStockInTx", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.sales.On("SaveSaleInTx", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	resp, err := suite.service.Checkout(ctx, dto.CheckoutRequest{
		SaleType: domain.SaleCash,
		Cart:     soapCart(),
		Tenders:  []domain.Tender{{Method: domain.MethodCash, Amount: dec("500")}},
	}, "owner")

	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
	suite.tx.AssertCalled(suite.T(), "Rollback", ctx, mock.Anything)
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestCheckout_ValidationSkipsStorage() {
	tests := []struct {
		name    string
		req     dto.CheckoutRequest
		wantErr error
	}{
		{"empty cart", dto.CheckoutRequest{SaleType: domain.SaleCash}, pricing.ErrEmptyCart},
		{"no customer", dto.CheckoutRequest{SaleType: domain.SalePermanent, Cart: soapCart()}, pricing.ErrCustomerRequired},
		{"blank name", dto.CheckoutRequest{SaleType: domain.SaleTemporary, Cart: soapCart(), CustomerInfo: &domain.CustomerInfo{Name: "  "}}, pricing.ErrNameRequired},
		{"underpaid", dto.CheckoutRequest{SaleType: domain.SaleCash, Cart: soapCart(), Tenders: []domain.Tender{{Method: domain.MethodCash, Amount: dec("10")}}}, pricing.ErrUnderpaid},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Checkout(context.Background(), tt.req, "owner")
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.tx.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestListSales_Pagination() {
	ctx := context.Background()
	t0 := suite.now
	page := []domain.Sale{
		{SaleID: "s3", CreatedAt: t0},
		{SaleID: "s2", CreatedAt: t0.Add(-time.Minute)},
		{SaleID: "s1", CreatedAt: t0.Add(-2 * time.Minute)},
	}
	suite.sales.On("ListSales", ctx, portsrepo.SaleFilter{Limit: 3}).Return(page, nil).Once()

	resp, err := suite.service.ListSales(ctx, dto.ListSalesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Sales, 2)
	suite.Require().NotNil(resp.NextToken)
	at, id, err := pagination.DecodeToken(*resp.NextToken)
	suite.Require().NoError(err)
	suite.Equal("s2", id)
	suite.True(at.Equal(t0.Add(-time.Minute)))

	suite.sales.On("ListSales", ctx, mock.MatchedBy(func(f portsrepo.SaleFilter) bool {
		return f.After != nil && f.After.SaleID == "s2" && f.Limit == 3
	})).Return(page[2:], nil).Once()

	next, err := suite.service.ListSales(ctx, dto.ListSalesParams{Limit: 2, NextToken: *resp.NextToken})
	suite.Require().NoError(err)
	suite.Len(next.Sales, 1)
	suite.Nil(next.NextToken)
	suite.assertMocks()
}

func (suite *CheckoutServiceTestSuite) TestListSales_BadToken() {
	_, err := suite.service.ListSales(context.Background(), dto.ListSalesParams{NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
