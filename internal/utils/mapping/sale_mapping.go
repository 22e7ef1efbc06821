package mapping

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/models"
)

// ToModelSale splits a domain Sale into its header, item and payment rows.
func ToModelSale(d domain.Sale) (models.Sale, []models.SaleItem, []models.SalePayment) {
	m := models.Sale{
		SaleID:          d.SaleID,
		SaleType:        string(d.SaleType),
		Subtotal:        d.Subtotal,
		DiscountPercent: d.DiscountPercent,
		ServiceCharge:   d.ServiceCharge,
		Tax:             d.Tax,
		Total:           d.Total,
		PaidAmount:      d.PaidAmount,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.CreatedAt,
			LastUpdatedBy: d.CreatedBy,
		},
	}
	if d.CustomerID != nil {
		m.CustomerID = nullString(*d.CustomerID)
	}
	if d.CustomerInfo != nil {
		m.CustomerName = nullString(d.CustomerInfo.Name)
		m.CustomerPhone = nullString(d.CustomerInfo.Phone)
	}

	items := make([]models.SaleItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.SaleItem{
			SaleID:       d.SaleID,
			LineNo:       i + 1,
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			Price:        it.Price,
			ItemDiscount: it.ItemDiscount,
		}
	}
	payments := make([]models.SalePayment, len(d.Payments))
	for i, p := range d.Payments {
		payments[i] = models.SalePayment{
			SaleID: d.SaleID,
			LineNo: i + 1,
			Method: string(p.Method),
			Amount: p.Amount,
			Detail: p.Detail,
		}
	}
	return m, items, payments
}

// ToDomainSale assembles a domain Sale from its rows. Items and payments must be in line order.
func ToDomainSale(m models.Sale, items []models.SaleItem, payments []models.SalePayment) domain.Sale {
	d := domain.Sale{
		SaleID: m.SaleID,
		SalePayload: domain.SalePayload{
			Items:           make([]domain.SaleItem, len(items)),
			SaleType:        domain.SaleType(m.SaleType),
			Payments:        make([]domain.Tender, len(payments)),
			PaidAmount:      m.PaidAmount,
			Subtotal:        m.Subtotal,
			DiscountPercent: m.DiscountPercent,
			ServiceCharge:   m.ServiceCharge,
			Tax:             m.Tax,
			Total:           m.Total,
		},
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
	if m.CustomerID.Valid {
		id := m.CustomerID.String
		d.CustomerID = &id
	}
	if m.CustomerName.Valid || m.CustomerPhone.Valid {
		d.CustomerInfo = &domain.CustomerInfo{Name: m.CustomerName.String, Phone: m.CustomerPhone.String}
	}
	for i, it := range items {
		d.Items[i] = domain.SaleItem{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			Price:        it.Price,
			ItemDiscount: it.ItemDiscount,
		}
	}
	for i, p := range payments {
		d.Payments[i] = domain.Tender{Method: domain.PaymentMethod(p.Method), Amount: p.Amount, Detail: p.Detail}
	}
	return d
}
