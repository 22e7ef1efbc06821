package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_pos_app/internal/models"
	"github.com/SscSPs/shop_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const customerColumns = `customer_id, name, phone, email, gender, address, cnic, credit_limit, due_date, total_paid, remaining_due, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for credit customers.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.Gender,
		&m.Address,
		&m.CNIC,
		&m.CreditLimit,
		&m.DueDate,
		&m.TotalPaid,
		&m.RemainingDue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Email,
		m.Gender,
		m.Address,
		m.CNIC,
		m.CreditLimit,
		m.DueDate,
		m.TotalPaid,
		m.RemainingDue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteError(err, "customer "+m.Name)
	}
	return nil
}

// FindCustomerByID retrieves a customer by ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return r.findByID(ctx, r.Pool, customerID, false)
}

// FindCustomerByIDForUpdate locks the customer row. Must be called within a transaction.
func (r *PgxCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	return r.findByID(ctx, tx, customerID, true)
}

func (r *PgxCustomerRepository) findByID(ctx context.Context, q querier, customerID string, lock bool) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := scanCustomer(q.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

// ListCustomers retrieves every customer ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name, customer_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	modelCustomers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Customer, error) {
		return scanCustomer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}

	customers := make([]domain.Customer, len(modelCustomers))
	for i, m := range modelCustomers {
		customers[i] = mapping.ToDomainCustomer(m)
	}
	return customers, nil
}

// SumRemainingDue totals the outstanding balance across all customers.
func (r *PgxCustomerRepository) SumRemainingDue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(remaining_due), 0) FROM customers;`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum customer balances: %w", err)
	}
	return total, nil
}

// UpdateBalanceInTx overwrites the customer's paid and remaining totals.
func (r *PgxCustomerRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, customerID string, totalPaid, remainingDue decimal.Decimal, userID string, now time.Time) error {
	ct, err := tx.Exec(ctx, `
		UPDATE customers
		SET total_paid = $2, remaining_due = $3, last_updated_at = $4, last_updated_by = $5
		WHERE customer_id = $1;
	`, customerID, totalPaid, remainingDue, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance for customer %s: %w", customerID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return nil
}

// SavePaymentInTx records a ledger payment.
func (r *PgxCustomerRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CreditPayment) error {
	m := mapping.ToModelCreditPayment(payment)
	_, err := tx.Exec(ctx, `
		INSERT INTO credit_payments (payment_id, customer_id, sale_id, amount, method, detail, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.PaymentID, m.CustomerID, m.SaleID, m.Amount, m.Method, m.Detail, m.PaidAt)
	if err != nil {
		return wrapWriteError(err, "payment "+m.PaymentID)
	}
	return nil
}

// ListPayments retrieves a customer's ledger payments, newest first.
func (r *PgxCustomerRepository) ListPayments(ctx context.Context, customerID string) ([]domain.CreditPayment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT payment_id, customer_id, sale_id, amount, method, detail, paid_at
		FROM credit_payments
		WHERE customer_id = $1
		ORDER BY paid_at DESC, payment_id;
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CreditPayment, error) {
		var m models.CreditPayment
		err := row.Scan(&m.PaymentID, &m.CustomerID, &m.SaleID, &m.Amount, &m.Method, &m.Detail, &m.PaidAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	payments := make([]domain.CreditPayment, len(modelPayments))
	for i, m := range modelPayments {
		payments[i] = mapping.ToDomainCreditPayment(m)
	}
	return payments, nil
}

// SumPaymentsBetween totals ledger payments made in [from, to).
func (r *PgxCustomerRepository) SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM credit_payments WHERE paid_at >= $1 AND paid_at < $2;
	`, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum credit payments: %w", err)
	}
	return total, nil
}
