package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// TemporaryCreditSvc works on accounts derived from temporary credit sales
type TemporaryCreditSvc interface {
	// TemporaryAccounts aggregates temporary credit sales by name and phone.
	TemporaryAccounts(ctx context.Context) ([]domain.CreditAccount, error)

	// RecordTemporaryPayment spreads a payment over the account's open sales.
	RecordTemporaryPayment(ctx context.Context, req dto.TemporaryPaymentRequest, userID string) (*dto.TemporaryPaymentResponse, error)
}

// PermanentCreditSvc works on registered credit customers
type PermanentCreditSvc interface {
	PermanentAccounts(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetailResponse, error)
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// RecordPayment applies a ledger payment. When persisting fails the response
	// still carries the account as it was before the attempt.
	RecordPayment(ctx context.Context, customerID string, req dto.RecordPaymentRequest, userID string) (*dto.RecordPaymentResponse, error)

	// Statement consolidates the customer's sales created in [from, to).
	Statement(ctx context.Context, customerID string, from, to *time.Time) (*domain.Statement, error)

	Reminder(ctx context.Context, customerID string) (*creditledger.Reminder, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	TemporaryCreditSvc
	PermanentCreditSvc
}
