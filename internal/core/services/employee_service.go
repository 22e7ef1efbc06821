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
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/google/uuid"
)

const joinDateLayout = "2006-01-02"

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	txManager    portsrepo.TransactionManager
}

// NewEmployeeService creates the staff and payroll service. events may be nil.
func NewEmployeeService(repos portsrepo.RepositoryProvider, events EventTracker) portssvc.EmployeeSvc {
	return &employeeService{
		BaseService:  BaseService{Events: events},
		employeeRepo: repos.EmployeeRepo,
		txManager:    repos.TxManager,
	}
}

var _ portssvc.EmployeeSvc = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, strings.TrimSpace(params.Search))
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string, now time.Time) (*dto.EmployeeDetailResponse, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	payments, err := s.employeeRepo.ListSalaryPayments(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary payments", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	return &dto.EmployeeDetailResponse{
		EmployeeResponse: dto.ToEmployeeResponse(*employee, now),
		Payments:         payments,
	}, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.EmployeeRequest, userID string) (*domain.Employee, error) {
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		AuditFields: domain.NewAuditFields(time.Now().UTC(), userID),
	}
	if err := applyEmployeeRequest(&employee, req); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("name", employee.Name))
		}
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.EmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := applyEmployeeRequest(employee, req); err != nil {
		return nil, err
	}
	employee.LastUpdatedAt = time.Now().UTC()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

func (s *employeeService) PaySalary(ctx context.Context, employeeID string, req dto.PaySalaryRequest, userID string, now time.Time) (*dto.PaySalaryResponse, error) {
	month := strings.TrimSpace(req.Month)
	if month == "" {
		month = now.Format(domain.PayrollMonthLayout)
	}
	if _, err := time.Parse(domain.PayrollMonthLayout, month); err != nil {
		return nil, fmt.Errorf("%w: month must look like 2025-06", apperrors.ErrValidation)
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: salary amount cannot be negative", apperrors.ErrValidation)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	employee, err := s.employeeRepo.FindEmployeeByIDForUpdate(ctx, tx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.LastPaidMonth == month {
		return nil, fmt.Errorf("%w: salary for %s is already paid", apperrors.ErrDuplicate, month)
	}

	payment := domain.SalaryPayment{
		PaymentID:  uuid.NewString(),
		EmployeeID: employeeID,
		Month:      month,
		Amount:     employee.Salary,
		PaidAt:     now.UTC(),
		PaidBy:     userID,
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if err := s.employeeRepo.SaveSalaryPaymentInTx(ctx, tx, payment); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save salary payment", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	if err := s.employeeRepo.SetLastPaidMonthInTx(ctx, tx, employeeID, month, userID, payment.PaidAt); err != nil {
		s.LogError(ctx, err, "Failed to update last paid month", slog.String("employee_id", employeeID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit salary payment", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to commit salary payment: %w", err)
	}

	if month > employee.LastPaidMonth {
		employee.LastPaidMonth = month
	}
	s.LogInfo(ctx, "Salary paid", slog.String("employee_id", employeeID), slog.String("month", month))
	s.Track(userID, "salary_paid", map[string]any{"employee_id": employeeID, "month": month, "amount": payment.Amount.String()})
	return &dto.PaySalaryResponse{Payment: payment, Employee: dto.ToEmployeeResponse(*employee, now)}, nil
}

// applyEmployeeRequest validates req and copies it onto e.
func applyEmployeeRequest(e *domain.Employee, req dto.EmployeeRequest) error {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return fmt.Errorf("%w: employee name and phone are required", apperrors.ErrValidation)
	}
	role := domain.EmployeeRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role == "" {
		role = domain.RoleCashier
	}
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if req.Salary.IsNegative() {
		return fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
	}
	var joined *time.Time
	if raw := strings.TrimSpace(req.JoinDate); raw != "" {
		t, err := time.Parse(joinDateLayout, raw)
		if err != nil {
			return fmt.Errorf("%w: join date must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		joined = &t
	}

	e.Name = name
	e.Phone = phone
	e.Email = strings.TrimSpace(req.Email)
	e.Role = role
	e.Salary = req.Salary
	e.JoinDate = joined
	e.Address = strings.TrimSpace(req.Address)
	e.CNIC = strings.TrimSpace(req.CNIC)
	return nil
}
