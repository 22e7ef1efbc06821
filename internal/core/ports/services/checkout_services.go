package services

import (
	"context"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// CartSvc edits a cart supplied by the terminal and returns the new cart.
type CartSvc interface {
	AddToCart(ctx context.Context, req dto.AddToCartRequest) (domain.Cart, error)
	UpdateLine(ctx context.Context, productID string, req dto.UpdateLineRequest) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, productID string, req dto.UpdateQuantityRequest) (domain.Cart, error)
	// CartSummary computes totals and the low stock preview for a cart.
	CartSummary(cart domain.Cart) dto.CartResponse
}

// TenderSvc derives totals and edits tenders for the terminal.
type TenderSvc interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	EditTenders(ctx context.Context, req dto.EditTendersRequest) (*dto.EditTendersResponse, error)
}

// SaleSvc records and lists sales.
type SaleSvc interface {
	// Checkout finalizes and persists a sale. The caller's cart is only cleared by a successful response.
	Checkout(ctx context.Context, req dto.CheckoutRequest, userID string) (*dto.CheckoutResponse, error)
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
	GetSale(ctx context.Context, saleID string) (*domain.Sale, error)
}

// CheckoutSvcFacade combines all sales terminal service interfaces
type CheckoutSvcFacade interface {
	CartSvc
	TenderSvc
	SaleSvc
}
