package mapping

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:   d.CustomerID,
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		Gender:       d.Gender,
		Address:      d.Address,
		CNIC:         d.CNIC,
		CreditLimit:  d.CreditLimit,
		DueDate:      nullTime(d.DueDate),
		TotalPaid:    d.TotalPaid,
		RemainingDue: d.RemainingDue,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	d := domain.Customer{
		CustomerID:   m.CustomerID,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		Gender:       m.Gender,
		Address:      m.Address,
		CNIC:         m.CNIC,
		CreditLimit:  m.CreditLimit,
		TotalPaid:    m.TotalPaid,
		RemainingDue: m.RemainingDue,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.DueDate.Valid {
		due := m.DueDate.Time
		d.DueDate = &due
	}
	return d
}

// ToModelCreditPayment converts a domain CreditPayment to a model CreditPayment
func ToModelCreditPayment(d domain.CreditPayment) models.CreditPayment {
	return models.CreditPayment{
		PaymentID:  d.PaymentID,
		CustomerID: d.CustomerID,
		SaleID:     nullString(d.SaleID),
		Amount:     d.Amount,
		Method:     string(d.Method),
		Detail:     d.Detail,
		PaidAt:     d.Date,
	}
}

// ToDomainCreditPayment converts a model CreditPayment to a domain CreditPayment
func ToDomainCreditPayment(m models.CreditPayment) domain.CreditPayment {
	return domain.CreditPayment{
		PaymentID:  m.PaymentID,
		CustomerID: m.CustomerID,
		SaleID:     m.SaleID.String,
		Amount:     m.Amount,
		Method:     domain.PaymentMethod(m.Method),
		Detail:     m.Detail,
		Date:       m.PaidAt,
	}
}
