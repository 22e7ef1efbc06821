package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID    string          `db:"employee_id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	Email         string          `db:"email"`
	Role          string          `db:"role"`
	Salary        decimal.Decimal `db:"salary"`
	JoinDate      sql.NullTime    `db:"join_date"`
	Address       string          `db:"address"`
	CNIC          string          `db:"cnic"`
	LastPaidMonth string          `db:"last_paid_month"`
	AuditFields
}

// SalaryPayment is a row of the salary_payments table.
type SalaryPayment struct {
	PaymentID  string          `db:"payment_id"`
	EmployeeID string          `db:"employee_id"`
	Month      string          `db:"month"`
	Amount     decimal.Decimal `db:"amount"`
	PaidAt     time.Time       `db:"paid_at"`
	PaidBy     string          `db:"paid_by"`
}
