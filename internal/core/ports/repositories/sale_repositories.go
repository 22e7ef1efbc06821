package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SaleCursor marks the last sale of a previous page.
type SaleCursor struct {
	CreatedAt time.Time
	SaleID    string
}

// SaleFilter narrows a sale listing. Sales come back newest first.
type SaleFilter struct {
	SaleType   domain.SaleType // Empty matches every type
	CustomerID string
	Contact    *domain.CustomerInfo // Exact name and phone of a temporary credit customer
	From       *time.Time           // Inclusive
	To         *time.Time           // Exclusive
	After      *SaleCursor
	Limit      int // Zero means no limit
}

// SalesSummary is a count and total over a time range.
type SalesSummary struct {
	Count int
	Total decimal.Decimal
}

// SaleReader defines read operations for sale records
type SaleReader interface {
	// FindSaleByID retrieves a specific sale with its items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales with their items matching filter.
	ListSales(ctx context.Context, filter SaleFilter) ([]domain.Sale, error)

	// SummarizeSales totals every sale created in [from, to).
	SummarizeSales(ctx context.Context, from, to time.Time) (SalesSummary, error)
}

// SaleWriter defines write operations for sale records, always inside a transaction
type SaleWriter interface {
	// SaveSaleInTx persists a sale and its items.
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error

	// LockSalesInTx selects sale headers matching filter and locks them for update.
	// Items and payments are not loaded.
	LockSalesInTx(ctx context.Context, tx pgx.Tx, filter SaleFilter) ([]domain.Sale, error)

	// UpdatePaidAmountsInTx sets the paid amount of each sale keyed by id.
	UpdatePaidAmountsInTx(ctx context.Context, tx pgx.Tx, paid map[string]decimal.Decimal, userID string, now time.Time) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
