package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EmployeeReader defines read operations for staff records
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves staff ordered by name. search matches name, phone or role.
	ListEmployees(ctx context.Context, search string) ([]domain.Employee, error)

	// ListSalaryPayments retrieves an employee's salary history, latest month first.
	ListSalaryPayments(ctx context.Context, employeeID string) ([]domain.SalaryPayment, error)
}

// EmployeeWriter defines write operations for staff records
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes the employee together with their salary history.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeTransactionSupport defines the payroll updates that run inside a transaction
type EmployeeTransactionSupport interface {
	FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID string) (*domain.Employee, error)
	SaveSalaryPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SalaryPayment) error
	SetLastPaidMonthInTx(ctx context.Context, tx pgx.Tx, employeeID, month, userID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeTransactionSupport
}
