package dto

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddToCartRequest adds one unit of a product to the supplied cart.
type AddToCartRequest struct {
	Cart      domain.Cart `json:"cart"`
	ProductID string      `json:"productID" binding:"required"`
}

// UpdateLineRequest edits the unit price or discount of a cart line.
type UpdateLineRequest struct {
	Cart  domain.Cart `json:"cart"`
	Field string      `json:"field" binding:"required"` // customPrice | itemDiscount
	Value string      `json:"value"`
}

// UpdateQuantityRequest sets the quantity of a cart line. Zero or less removes it.
type UpdateQuantityRequest struct {
	Cart     domain.Cart `json:"cart"`
	Quantity int         `json:"qty"`
}

// CartResponse is the cart after an edit.
type CartResponse struct {
	Cart     domain.Cart       `json:"cart"`
	Totals   domain.SaleTotals `json:"totals"`
	LowStock []string          `json:"lowStock"`
}

// QuoteRequest asks for the figures of the terminal's current state.
type QuoteRequest struct {
	SaleType        domain.SaleType      `json:"saleType" binding:"omitempty,saletype"`
	Cart            domain.Cart          `json:"cart"`
	DiscountPercent decimal.Decimal      `json:"discountPercent"`
	CustomerID      string               `json:"customer"`
	CustomerInfo    *domain.CustomerInfo `json:"customerInfo"`
	Tenders         []domain.Tender      `json:"tenders" binding:"omitempty,dive"`
}

// QuoteResponse carries the totals and tender state shown on the terminal.
type QuoteResponse struct {
	Totals           domain.SaleTotals    `json:"totals"`
	Summary          domain.TenderSummary `json:"summary"`
	DisplayRemaining decimal.Decimal      `json:"displayRemaining"`
	CanSubmit        bool                 `json:"canSubmit"`
	Blocker          string               `json:"blocker,omitempty"`
	LowStock         []string             `json:"lowStock"`
}

// TenderAction names an edit to the tender list.
type TenderAction string

const (
	TenderAdd    TenderAction = "add"
	TenderUpdate TenderAction = "update"
	TenderRemove TenderAction = "remove"
	TenderReset  TenderAction = "reset"
)

// EditTendersRequest applies one edit to the tender list.
type EditTendersRequest struct {
	Tenders    []domain.Tender `json:"tenders"`
	Action     TenderAction    `json:"action" binding:"required,oneof=add update remove reset"`
	Index      int             `json:"index"`
	Tender     *domain.Tender  `json:"tender"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// EditTendersResponse is the tender list after the edit, with its summary.
type EditTendersResponse struct {
	Tenders []domain.Tender      `json:"tenders"`
	Summary domain.TenderSummary `json:"summary"`
}

// CheckoutRequest finalizes the terminal's current state into a sale.
type CheckoutRequest struct {
	SaleType        domain.SaleType      `json:"saleType" binding:"required,saletype"`
	Cart            domain.Cart          `json:"cart"`
	DiscountPercent decimal.Decimal      `json:"discountPercent"`
	CustomerID      string               `json:"customer"`
	CustomerInfo    *domain.CustomerInfo `json:"customerInfo"`
	Tenders         []domain.Tender      `json:"tenders"`
}

// CheckoutResponse is the receipt plus the reset terminal state.
type CheckoutResponse struct {
	Sale      domain.Sale          `json:"sale"`
	Reference string               `json:"reference"`
	Totals    domain.SaleTotals    `json:"totals"`
	Summary   domain.TenderSummary `json:"summary"`
	ChangeDue decimal.Decimal      `json:"changeDue"`
	LowStock  []string             `json:"lowStock"`
	Cart      domain.Cart          `json:"cart"`
	Tenders   []domain.Tender      `json:"tenders"`
}

// ListSalesParams are the query parameters accepted by the sales history.
type ListSalesParams struct {
	SaleType  string `form:"saleType" binding:"omitempty,saletype"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// ListSalesResponse is one page of the sales history.
type ListSalesResponse struct {
	Sales     []domain.Sale `json:"sales"`
	NextToken *string       `json:"nextToken,omitempty"`
}
