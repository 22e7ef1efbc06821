package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/core/pricing"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/SscSPs/shop_pos_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultSalesPageSize = 50

var maxDiscountPercent = decimal.NewFromInt(100)

type checkoutService struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	txManager    portsrepo.TransactionManager
	rates        pricing.Rates
	now          func() time.Time
}

// CheckoutOption is a functional option for configuring the checkout service
type CheckoutOption func(*checkoutService)

// WithRates overrides the service charge and tax rate.
func WithRates(rates pricing.Rates) CheckoutOption {
	return func(s *checkoutService) {
		s.rates = rates
	}
}

// WithCheckoutEvents sends sale events to tracker.
func WithCheckoutEvents(tracker EventTracker) CheckoutOption {
	return func(s *checkoutService) {
		s.Events = tracker
	}
}

// WithCheckoutClock replaces the clock used to stamp sales.
func WithCheckoutClock(now func() time.Time) CheckoutOption {
	return func(s *checkoutService) {
		s.now = now
	}
}

// NewCheckoutService creates the sales terminal service.
func NewCheckoutService(repos portsrepo.RepositoryProvider, options ...CheckoutOption) portssvc.CheckoutSvcFacade {
	svc := &checkoutService{
		productRepo:  repos.ProductRepo,
		saleRepo:     repos.SaleRepo,
		customerRepo: repos.CustomerRepo,
		txManager:    repos.TxManager,
		rates:        pricing.DefaultRates,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

func (s *checkoutService) AddToCart(ctx context.Context, req dto.AddToCartRequest) (domain.Cart, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	return pricing.AddLine(req.Cart, *product)
}

func (s *checkoutService) UpdateLine(ctx context.Context, productID string, req dto.UpdateLineRequest) (domain.Cart, error) {
	field, err := pricing.ParseLineField(req.Field)
	if err != nil {
		return nil, err
	}
	if req.Cart.Find(productID) < 0 {
		return nil, fmt.Errorf("%w: product %s is not in the cart", apperrors.ErrValidation, productID)
	}
	return pricing.SetLineField(req.Cart, productID, field, req.Value), nil
}

func (s *checkoutService) UpdateQuantity(ctx context.Context, productID string, req dto.UpdateQuantityRequest) (domain.Cart, error) {
	products, err := s.productRepo.FindProductsByIDs(ctx, []string{productID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load product for quantity change", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	catalog := make(pricing.Catalog, len(products))
	for id, p := range products {
		catalog[id] = p
	}
	return pricing.SetLineQuantity(req.Cart, productID, catalog, req.Quantity)
}

func (s *checkoutService) CartSummary(cart domain.Cart) dto.CartResponse {
	if cart == nil {
		cart = domain.Cart{}
	}
	return dto.CartResponse{
		Cart:     cart,
		Totals:   s.rates.ComputeTotals(cart, decimal.Zero),
		LowStock: nonNil(pricing.DetectLowStock(cart)),
	}
}

func (s *checkoutService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := validateDiscount(req.DiscountPercent); err != nil {
		return nil, err
	}
	totals := s.rates.ComputeTotals(req.Cart, req.DiscountPercent)
	summary := pricing.ComputeTenderSummary(req.Tenders, totals.GrandTotal)

	saleType := req.SaleType
	if saleType == "" {
		saleType = domain.SaleCash
	}
	blocker := pricing.CheckPreconditions(finalizeInput(saleType, req.Cart, req.DiscountPercent, req.CustomerID, req.CustomerInfo, req.Tenders))
	if blocker == nil && saleType == domain.SaleCash {
		switch {
		case !tendersValid(req.Tenders):
			blocker = errors.New("complete the payment details")
		case !summary.Covered():
			blocker = pricing.ErrUnderpaid
		}
	}

	resp := &dto.QuoteResponse{
		Totals:           totals,
		Summary:          summary,
		DisplayRemaining: summary.DisplayRemaining(),
		CanSubmit:        blocker == nil,
		LowStock:         nonNil(pricing.DetectLowStock(req.Cart)),
	}
	if blocker != nil {
		resp.Blocker = blocker.Error()
	}
	return resp, nil
}

func finalizeInput(saleType domain.SaleType, cart domain.Cart, discount decimal.Decimal, customerID string, info *domain.CustomerInfo, tenders []domain.Tender) pricing.FinalizeInput {
	in := pricing.FinalizeInput{
		SaleType:        saleType,
		Cart:            cart,
		DiscountPercent: discount,
		CustomerID:      customerID,
		Tenders:         tenders,
	}
	if info != nil {
		in.CustomerInfo = domain.CustomerInfo{
			Name:  strings.TrimSpace(info.Name),
			Phone: strings.TrimSpace(info.Phone),
		}
	}
	return in
}

func (s *checkoutService) EditTenders(ctx context.Context, req dto.EditTendersRequest) (*dto.EditTendersResponse, error) {
	tenders := req.Tenders
	if len(tenders) == 0 {
		tenders = pricing.ResetTenders()
	}

	var err error
	switch req.Action {
	case dto.TenderAdd:
		tenders = pricing.AddTender(tenders)
	case dto.TenderUpdate:
		if req.Tender == nil {
			return nil, fmt.Errorf("%w: tender is required for update", apperrors.ErrValidation)
		}
		tenders, err = pricing.UpdateTender(tenders, req.Index, *req.Tender)
	case dto.TenderRemove:
		tenders, err = pricing.RemoveTender(tenders, req.Index)
	case dto.TenderReset:
		tenders = pricing.ResetTenders()
	default:
		return nil, fmt.Errorf("%w: unknown tender action %q", apperrors.ErrValidation, req.Action)
	}
	if err != nil {
		return nil, err
	}

	return &dto.EditTendersResponse{
		Tenders: tenders,
		Summary: pricing.ComputeTenderSummary(tenders, req.GrandTotal),
	}, nil
}

func (s *checkoutService) Checkout(ctx context.Context, req dto.CheckoutRequest, userID string) (*dto.CheckoutResponse, error) {
	if err := validateDiscount(req.DiscountPercent); err != nil {
		return nil, err
	}

	in := finalizeInput(req.SaleType, req.Cart, req.DiscountPercent, req.CustomerID, req.CustomerInfo, req.Tenders)
	in.Rates = &s.rates

	finalized, err := pricing.FinalizeSale(in)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sale := domain.Sale{
		SaleID:      uuid.NewString(),
		SalePayload: finalized.Payload,
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if sale.SaleType == domain.SaleCash {
		sale.Payments = appliedTenders(req.Tenders)
	}

	if err := s.recordSale(ctx, sale, userID, now); err != nil {
		return nil, err
	}

	lowStock := nonNil(pricing.DetectLowStock(req.Cart))
	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("sale_type", string(sale.SaleType)),
		slog.String("total", sale.Total.String()))
	if len(lowStock) > 0 {
		s.LogInfo(ctx, "Low stock after sale", slog.Any("products", lowStock))
	}
	s.Track(userID, "sale_completed", map[string]any{
		"sale_id":   sale.SaleID,
		"sale_type": string(sale.SaleType),
		"total":     sale.Total.StringFixed(2),
		"items":     len(sale.Items),
	})

	return &dto.CheckoutResponse{
		Sale:      sale,
		Reference: pricing.ShortReference(sale.SaleID),
		Totals:    finalized.Totals,
		Summary:   finalized.Summary,
		ChangeDue: finalized.Summary.ChangeDue,
		LowStock:  lowStock,
		Cart:      domain.Cart{},
		Tenders:   pricing.ResetTenders(),
	}, nil
}

// recordSale persists sale, takes its items out of stock and, for permanent credit,
// adds the amount owed to the customer's balance. Nothing is written unless all steps succeed.
func (s *checkoutService) recordSale(ctx context.Context, sale domain.Sale, userID string, now time.Time) error {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin sale transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	quantities := make(map[string]int)
	ids := make([]string, 0, len(sale.Items))
	for _, item := range sale.Items {
		if _, seen := quantities[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.FindProductsByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock products for sale")
		return fmt.Errorf("failed to load products: %w", err)
	}
	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
		if quantities[id] > p.Stock {
			return fmt.Errorf("%w: only %d %s(s) available", apperrors.ErrValidation, p.Stock, p.Name)
		}
	}

	if sale.SaleType == domain.SalePermanent {
		customer, err := s.customerRepo.FindCustomerByIDForUpdate(ctx, tx, *sale.CustomerID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to lock customer for sale", slog.String("customer_id", *sale.CustomerID))
			}
			return err
		}
		due := customer.RemainingDue.Add(sale.Remaining())
		if err := s.customerRepo.UpdateBalanceInTx(ctx, tx, customer.CustomerID, customer.TotalPaid, due, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to update customer balance", slog.String("customer_id", customer.CustomerID))
			return fmt.Errorf("failed to update customer balance: %w", err)
		}
	}

	if err := s.productRepo.DecrementStockInTx(ctx, tx, quantities, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to decrement stock")
		return fmt.Errorf("failed to update stock: %w", err)
	}
	if err := s.saleRepo.SaveSaleInTx(ctx, tx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_id", sale.SaleID))
		return fmt.Errorf("failed to save sale: %w", err)
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit sale", slog.String("sale_id", sale.SaleID))
		return fmt.Errorf("failed to commit sale: %w", err)
	}
	return nil
}

func (s *checkoutService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSalesPageSize
	}
	filter := portsrepo.SaleFilter{
		SaleType: domain.SaleType(params.SaleType),
		Limit:    limit + 1,
	}
	if params.NextToken != "" {
		createdAt, saleID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.After = &portsrepo.SaleCursor{CreatedAt: createdAt, SaleID: saleID}
	}

	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := &dto.ListSalesResponse{Sales: sales}
	if len(sales) > limit {
		resp.Sales = sales[:limit]
		last := resp.Sales[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.SaleID)
		resp.NextToken = &token
	}
	if resp.Sales == nil {
		resp.Sales = []domain.Sale{}
	}
	return resp, nil
}

func (s *checkoutService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func validateDiscount(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(maxDiscountPercent) {
		return fmt.Errorf("%w: discount must be between 0 and 100 percent", apperrors.ErrValidation)
	}
	return nil
}

func tendersValid(tenders []domain.Tender) bool {
	for _, t := range tenders {
		if pricing.ValidateTender(t) != nil {
			return false
		}
	}
	return true
}

// appliedTenders drops blank tenders from what is stored with a cash sale.
func appliedTenders(tenders []domain.Tender) []domain.Tender {
	out := make([]domain.Tender, 0, len(tenders))
	for _, t := range tenders {
		if t.Amount.IsPositive() {
			out = append(out, t)
		}
	}
	return out
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
