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
)

const employeeColumns = `employee_id, name, phone, email, role, salary, join_date, address, cnic, last_paid_month, created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for staff and payroll data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.Role,
		&m.Salary,
		&m.JoinDate,
		&m.Address,
		&m.CNIC,
		&m.LastPaidMonth,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Name, m.Phone, m.Email, m.Role, m.Salary, m.JoinDate, m.Address, m.CNIC,
		m.LastPaidMonth, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteError(err, "employee "+m.Name)
	}
	return nil
}

// UpdateEmployee overwrites the profile of an existing employee. Payroll fields are left alone.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	ct, err := r.Pool.Exec(ctx, `
		UPDATE employees
		SET name = $2, phone = $3, email = $4, role = $5, salary = $6, join_date = $7, address = $8, cnic = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE employee_id = $1;
	`, m.EmployeeID, m.Name, m.Phone, m.Email, m.Role, m.Salary, m.JoinDate, m.Address, m.CNIC, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapWriteError(err, "employee "+m.Name)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, m.EmployeeID)
	}
	return nil
}

// DeleteEmployee removes an employee; salary_payments cascade.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return r.findByID(ctx, r.Pool, employeeID, false)
}

// FindEmployeeByIDForUpdate locks the employee row. Must be called within a transaction.
func (r *PgxEmployeeRepository) FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID string) (*domain.Employee, error) {
	return r.findByID(ctx, tx, employeeID, true)
}

func (r *PgxEmployeeRepository) findByID(ctx context.Context, q querier, employeeID string, lock bool) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	e := mapping.ToDomainEmployee(m)
	return &e, nil
}

// ListEmployees retrieves staff ordered by name.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	var where whereBuilder
	if search != "" {
		where.add("(name ILIKE '%' || ? || '%' OR phone LIKE '%' || ? || '%' OR role = ?)", search, search, search)
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees `+where.String()+` ORDER BY name, employee_id;`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	employees := make([]domain.Employee, len(modelEmployees))
	for i, m := range modelEmployees {
		employees[i] = mapping.ToDomainEmployee(m)
	}
	return employees, nil
}

// SaveSalaryPaymentInTx records a month's salary. A second payment for the same month is a duplicate.
func (r *PgxEmployeeRepository) SaveSalaryPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SalaryPayment) error {
	m := mapping.ToModelSalaryPayment(payment)
	_, err := tx.Exec(ctx, `
		INSERT INTO salary_payments (payment_id, employee_id, month, amount, paid_at, paid_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, m.PaymentID, m.EmployeeID, m.Month, m.Amount, m.PaidAt, m.PaidBy)
	if err != nil {
		return wrapWriteError(err, "salary for "+m.Month)
	}
	return nil
}

// SetLastPaidMonthInTx moves the employee's last paid month forward.
func (r *PgxEmployeeRepository) SetLastPaidMonthInTx(ctx context.Context, tx pgx.Tx, employeeID, month, userID string, now time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE employees
		SET last_paid_month = GREATEST(last_paid_month, $2), last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1;
	`, employeeID, month, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update last paid month for employee %s: %w", employeeID, err)
	}
	return nil
}

// ListSalaryPayments retrieves an employee's salary history, latest month first.
func (r *PgxEmployeeRepository) ListSalaryPayments(ctx context.Context, employeeID string) ([]domain.SalaryPayment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT payment_id, employee_id, month, amount, paid_at, paid_by
		FROM salary_payments
		WHERE employee_id = $1
		ORDER BY month DESC;
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary payments: %w", err)
	}
	modelPayments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SalaryPayment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan salary payments: %w", err)
	}

	payments := make([]domain.SalaryPayment, len(modelPayments))
	for i, m := range modelPayments {
		payments[i] = mapping.ToDomainSalaryPayment(m)
	}
	return payments, nil
}
