package mapping

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		Name:          d.Name,
		Phone:         d.Phone,
		Email:         d.Email,
		Role:          string(d.Role),
		Salary:        d.Salary,
		JoinDate:      nullTime(d.JoinDate),
		Address:       d.Address,
		CNIC:          d.CNIC,
		LastPaidMonth: d.LastPaidMonth,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	d := domain.Employee{
		EmployeeID:    m.EmployeeID,
		Name:          m.Name,
		Phone:         m.Phone,
		Email:         m.Email,
		Role:          domain.EmployeeRole(m.Role),
		Salary:        m.Salary,
		Address:       m.Address,
		CNIC:          m.CNIC,
		LastPaidMonth: m.LastPaidMonth,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.JoinDate.Valid {
		joined := m.JoinDate.Time
		d.JoinDate = &joined
	}
	return d
}

func ToModelSalaryPayment(d domain.SalaryPayment) models.SalaryPayment {
	return models.SalaryPayment(d)
}

func ToDomainSalaryPayment(m models.SalaryPayment) domain.SalaryPayment {
	return domain.SalaryPayment(m)
}
