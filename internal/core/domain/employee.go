package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollMonthLayout formats the month a salary is paid for, e.g. "2025-06".
const PayrollMonthLayout = "2006-01"

// EmployeeRole is the job an employee does in the shop.
type EmployeeRole string

const (
	RoleCashier     EmployeeRole = "cashier"
	RoleManager     EmployeeRole = "manager"
	RoleSalesman    EmployeeRole = "salesman"
	RoleStorekeeper EmployeeRole = "storekeeper"
)

// IsValid reports whether r is a known role.
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleCashier, RoleManager, RoleSalesman, RoleStorekeeper:
		return true
	}
	return false
}

// SalaryStatus tells whether this month's salary has been paid.
type SalaryStatus string

const (
	SalaryPaid   SalaryStatus = "paid"
	SalaryUnpaid SalaryStatus = "unpaid"
)

// Employee is a member of staff on the monthly payroll.
type Employee struct {
	EmployeeID    string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Role          EmployeeRole    `json:"role"`
	Salary        decimal.Decimal `json:"salary"` // Monthly
	JoinDate      *time.Time      `json:"joinDate,omitempty"`
	Address       string          `json:"address"`
	CNIC          string          `json:"cnic"`
	LastPaidMonth string          `json:"lastPaidMonth"` // PayrollMonthLayout, empty if never paid
	AuditFields
}

// SalaryStatusAt reports whether the salary for the month containing now is paid.
func (e Employee) SalaryStatusAt(now time.Time) SalaryStatus {
	if e.LastPaidMonth != "" && e.LastPaidMonth == now.Format(PayrollMonthLayout) {
		return SalaryPaid
	}
	return SalaryUnpaid
}

// SalaryPayment records one month's salary handed to an employee.
type SalaryPayment struct {
	PaymentID  string          `json:"id"`
	EmployeeID string          `json:"employeeID"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paidAt"`
	PaidBy     string          `json:"paidBy"`
}
