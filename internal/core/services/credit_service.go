package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultPaymentDetail = "Payment recorded"

type creditService struct {
	BaseService
	saleRepo     portsrepo.SaleRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	txManager    portsrepo.TransactionManager
	shop         creditledger.Shop
	now          func() time.Time
}

// CreditOption is a functional option for configuring the credit service
type CreditOption func(*creditService)

// WithShop sets the sender shown on payment reminders.
func WithShop(shop creditledger.Shop) CreditOption {
	return func(s *creditService) {
		s.shop = shop
	}
}

// WithCreditEvents sends payment events to tracker.
func WithCreditEvents(tracker EventTracker) CreditOption {
	return func(s *creditService) {
		s.Events = tracker
	}
}

// WithCreditClock replaces the clock used to date payments.
func WithCreditClock(now func() time.Time) CreditOption {
	return func(s *creditService) {
		s.now = now
	}
}

// NewCreditService creates the credit ledger service.
func NewCreditService(repos portsrepo.RepositoryProvider, options ...CreditOption) portssvc.CreditSvcFacade {
	svc := &creditService{
		saleRepo:     repos.SaleRepo,
		customerRepo: repos.CustomerRepo,
		txManager:    repos.TxManager,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

func (s *creditService) temporarySales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{SaleType: domain.SaleTemporary})
	if err != nil {
		s.LogError(ctx, err, "Failed to list temporary credit sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (s *creditService) TemporaryAccounts(ctx context.Context) ([]domain.CreditAccount, error) {
	sales, err := s.temporarySales(ctx)
	if err != nil {
		return nil, err
	}
	return creditledger.AggregateByCustomer(sales, creditledger.TemporaryIdentity), nil
}

// temporaryAccount aggregates the sales billed to key into one account.
func (s *creditService) temporaryAccount(ctx context.Context, key string) (domain.CreditAccount, error) {
	sales, err := s.temporarySales(ctx)
	if err != nil {
		return domain.CreditAccount{}, err
	}
	var mine []domain.Sale
	for _, sale := range sales {
		if id, ok := creditledger.TemporaryIdentity(sale); ok && id.Key == key {
			mine = append(mine, sale)
		}
	}
	if len(mine) == 0 {
		return domain.CreditAccount{}, fmt.Errorf("%w: temporary credit account %q", apperrors.ErrNotFound, key)
	}
	return creditledger.AggregateByCustomer(mine, creditledger.TemporaryIdentity)[0], nil
}

func (s *creditService) RecordTemporaryPayment(ctx context.Context, req dto.TemporaryPaymentRequest, userID string) (*dto.TemporaryPaymentResponse, error) {
	account, err := s.temporaryAccount(ctx, req.CustomerKey)
	if err != nil {
		return nil, err
	}
	pending, err := creditledger.BeginPayment(account, req.Amount)
	if err != nil {
		return nil, err
	}

	contact := domain.CustomerInfo{Name: account.Name, Phone: account.Phone}
	allocations, err := s.allocateTemporaryPayment(ctx, req.CustomerKey, contact, req.Amount, userID)
	if err != nil {
		restored := pending.Rollback()
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Temporary credit payment failed, balance restored",
				slog.String("customer_key", req.CustomerKey),
				slog.String("remaining_due", restored.RemainingDue.String()))
		}
		return &dto.TemporaryPaymentResponse{Account: restored, Allocations: []creditledger.SaleAllocation{}}, err
	}

	result := pending.Optimistic()
	if fresh, err := s.temporaryAccount(ctx, req.CustomerKey); err == nil {
		result = pending.Reconcile(fresh.TotalPaid, fresh.RemainingDue)
	} else {
		s.LogError(ctx, err, "Could not re-read account after payment, returning local figures",
			slog.String("customer_key", req.CustomerKey))
	}

	s.LogInfo(ctx, "Temporary credit payment recorded",
		slog.String("customer_key", req.CustomerKey),
		slog.String("amount", req.Amount.String()),
		slog.Int("sales", len(allocations)))
	s.Track(userID, "credit_payment_recorded", map[string]any{
		"credit_type": string(domain.SaleTemporary),
		"amount":      req.Amount.StringFixed(2),
	})

	return &dto.TemporaryPaymentResponse{Account: result, Allocations: allocations}, nil
}

// allocateTemporaryPayment locks the customer's sales, re-checks the amount against
// what they owe now and spreads it over them, oldest first.
func (s *creditService) allocateTemporaryPayment(ctx context.Context, key string, contact domain.CustomerInfo, amount decimal.Decimal, userID string) ([]creditledger.SaleAllocation, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	locked, err := s.saleRepo.LockSalesInTx(ctx, tx, portsrepo.SaleFilter{SaleType: domain.SaleTemporary, Contact: &contact})
	if err != nil {
		return nil, fmt.Errorf("failed to lock sales: %w", err)
	}
	var mine []domain.Sale
	for _, sale := range locked {
		if id, ok := creditledger.TemporaryIdentity(sale); ok && id.Key == key {
			mine = append(mine, sale)
		}
	}
	if len(mine) == 0 {
		return nil, fmt.Errorf("%w: temporary credit account %q", apperrors.ErrNotFound, key)
	}
	current := creditledger.AggregateByCustomer(mine, creditledger.TemporaryIdentity)[0]
	if err := creditledger.ValidatePayment(current, amount); err != nil {
		return nil, err
	}

	allocations := creditledger.AllocatePayment(mine, amount)
	paid := make(map[string]decimal.Decimal, len(allocations))
	for _, a := range allocations {
		paid[a.SaleID] = a.PaidAmount
	}
	if err := s.saleRepo.UpdatePaidAmountsInTx(ctx, tx, paid, userID, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to update sales: %w", err)
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}
	return allocations, nil
}

func (s *creditService) PermanentAccounts(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

func (s *creditService) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetailResponse, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.customerRepo.ListPayments(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.CreditPayment{}
	}
	return &dto.CustomerDetailResponse{Customer: *customer, Payments: payments}, nil
}

func (s *creditService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", apperrors.ErrValidation)
	}
	limit := domain.DefaultCreditLimit
	if req.CreditLimit != nil {
		if !req.CreditLimit.IsPositive() {
			return nil, fmt.Errorf("%w: credit limit must be positive", apperrors.ErrValidation)
		}
		limit = *req.CreditLimit
	}

	now := s.now().UTC()
	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(req.Email),
		Gender:       req.Gender,
		Address:      strings.TrimSpace(req.Address),
		CNIC:         strings.TrimSpace(req.CNIC),
		CreditLimit:  limit,
		DueDate:      req.DueDate,
		TotalPaid:    decimal.Zero,
		RemainingDue: decimal.Zero,
		AuditFields:  domain.NewAuditFields(now, creatorUserID),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save customer")
		}
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *creditService) RecordPayment(ctx context.Context, customerID string, req dto.RecordPaymentRequest, userID string) (*dto.RecordPaymentResponse, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	pending, err := creditledger.BeginPayment(creditledger.AccountFromCustomer(*customer), req.Amount)
	if err != nil {
		return nil, err
	}

	payment := domain.CreditPayment{
		PaymentID:  uuid.NewString(),
		CustomerID: customerID,
		SaleID:     strings.TrimSpace(req.SaleID),
		Amount:     req.Amount,
		Method:     req.Method,
		Detail:     strings.TrimSpace(req.Detail),
		Date:       s.now().UTC(),
	}
	if payment.Method == "" {
		payment.Method = domain.MethodCash
	}
	if payment.Detail == "" {
		payment.Detail = defaultPaymentDetail
	}
	if req.Date != nil {
		payment.Date = req.Date.UTC()
	}

	totalPaid, remainingDue, err := s.persistPayment(ctx, payment, userID)
	if err != nil {
		restored := pending.Rollback()
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Credit payment failed, balance restored",
				slog.String("customer_id", customerID),
				slog.String("remaining_due", restored.RemainingDue.String()))
		}
		return &dto.RecordPaymentResponse{
			CustomerID:   customerID,
			TotalPaid:    restored.TotalPaid,
			RemainingDue: restored.RemainingDue,
			Account:      restored,
		}, err
	}

	account := pending.Reconcile(totalPaid, remainingDue)
	s.LogInfo(ctx, "Credit payment recorded",
		slog.String("customer_id", customerID),
		slog.String("amount", payment.Amount.String()))
	s.Track(userID, "credit_payment_recorded", map[string]any{
		"credit_type": string(domain.SalePermanent),
		"amount":      payment.Amount.StringFixed(2),
		"method":      string(payment.Method),
	})

	return &dto.RecordPaymentResponse{
		CustomerID:   customerID,
		TotalPaid:    account.TotalPaid,
		RemainingDue: account.RemainingDue,
		Account:      account,
		Payment:      &payment,
	}, nil
}

// persistPayment applies payment to the locked customer row and returns the stored balances.
func (s *creditService) persistPayment(ctx context.Context, payment domain.CreditPayment, userID string) (decimal.Decimal, decimal.Decimal, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	current, err := s.customerRepo.FindCustomerByIDForUpdate(ctx, tx, payment.CustomerID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	next, err := creditledger.ApplyPayment(creditledger.AccountFromCustomer(*current), payment.Amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	if err := s.customerRepo.UpdateBalanceInTx(ctx, tx, payment.CustomerID, next.TotalPaid, next.RemainingDue, userID, s.now().UTC()); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to update balance: %w", err)
	}
	if err := s.customerRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to save payment: %w", err)
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to commit payment: %w", err)
	}
	return next.TotalPaid, next.RemainingDue, nil
}

func (s *creditService) Statement(ctx context.Context, customerID string, from, to *time.Time) (*domain.Statement, error) {
	if from != nil && to != nil && !from.Before(*to) {
		return nil, fmt.Errorf("%w: from must be before to", apperrors.ErrValidation)
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		SaleType:   domain.SalePermanent,
		CustomerID: customerID,
		From:       from,
		To:         to,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer sales", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].CreatedAt.Before(sales[j].CreatedAt) })

	statement := creditledger.BuildStatement(*customer, sales)
	statement.From = from
	statement.To = to
	return &statement, nil
}

func (s *creditService) Reminder(ctx context.Context, customerID string) (*creditledger.Reminder, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !customer.RemainingDue.IsPositive() {
		return nil, fmt.Errorf("%w: customer has no outstanding balance", apperrors.ErrValidation)
	}
	reminder := creditledger.BuildReminder(*customer, s.shop)
	return &reminder, nil
}
