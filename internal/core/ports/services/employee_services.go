package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// EmployeeSvc manages staff records and the monthly payroll.
type EmployeeSvc interface {
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, employeeID string, now time.Time) (*dto.EmployeeDetailResponse, error)
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest, userID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.EmployeeRequest, userID string) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error

	// PaySalary records one month's salary. A month can only be paid once.
	PaySalary(ctx context.Context, employeeID string, req dto.PaySalaryRequest, userID string, now time.Time) (*dto.PaySalaryResponse, error)
}
