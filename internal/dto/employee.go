package dto

import (
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeRequest creates or replaces an employee's profile.
type EmployeeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Phone    string          `json:"phone" binding:"required"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Role     string          `json:"role"` // Defaults to cashier
	Salary   decimal.Decimal `json:"salary"`
	JoinDate string          `json:"joinDate"` // YYYY-MM-DD, optional
	Address  string          `json:"address"`
	CNIC     string          `json:"cnic"`
}

// ListEmployeesParams are the query parameters accepted by the staff listing.
type ListEmployeesParams struct {
	Search string `form:"q"`
}

// PaySalaryRequest pays one month's salary. Zero values pay the current month at the employee's salary.
type PaySalaryRequest struct {
	Month  string           `json:"month"` // YYYY-MM
	Amount *decimal.Decimal `json:"amount"`
}

// EmployeeResponse is an employee with this month's salary status.
type EmployeeResponse struct {
	domain.Employee
	SalaryStatus domain.SalaryStatus `json:"salaryStatus"`
}

// ListEmployeesResponse wraps the staff listing.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// EmployeeDetailResponse is an employee with their salary history.
type EmployeeDetailResponse struct {
	EmployeeResponse
	Payments []domain.SalaryPayment `json:"payments"`
}

// PaySalaryResponse returns the recorded payment and the updated employee.
type PaySalaryResponse struct {
	Payment  domain.SalaryPayment `json:"payment"`
	Employee EmployeeResponse     `json:"employee"`
}

// ToEmployeeResponse derives the salary status for the month containing now.
func ToEmployeeResponse(e domain.Employee, now time.Time) EmployeeResponse {
	return EmployeeResponse{Employee: e, SalaryStatus: e.SalaryStatusAt(now)}
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse
func ToListEmployeesResponse(employees []domain.Employee, now time.Time) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(e, now)
	}
	return ListEmployeesResponse{Employees: res}
}
