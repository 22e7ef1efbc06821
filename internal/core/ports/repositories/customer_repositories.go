package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CustomerReader defines read operations for permanent credit customers
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves every customer ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// ListPayments retrieves a customer's ledger payments, newest first.
	ListPayments(ctx context.Context, customerID string) ([]domain.CreditPayment, error)

	// SumRemainingDue totals the outstanding balance across all customers.
	SumRemainingDue(ctx context.Context) (decimal.Decimal, error)

	// SumPaymentsBetween totals ledger payments made in [from, to).
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

// CustomerWriter defines write operations for permanent credit customers
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerTransactionSupport defines ledger updates that run inside a transaction
type CustomerTransactionSupport interface {
	// FindCustomerByIDForUpdate selects a customer and locks the row.
	FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error)

	// UpdateBalanceInTx overwrites the customer's paid and remaining totals.
	UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, customerID string, totalPaid, remainingDue decimal.Decimal, userID string, now time.Time) error

	// SavePaymentInTx records a ledger payment.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CreditPayment) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerTransactionSupport
}
