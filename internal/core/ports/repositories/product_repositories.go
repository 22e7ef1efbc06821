package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProductFilter narrows a product listing. Empty fields match everything.
type ProductFilter struct {
	Category string
	Location string
	Search   string // Matches name (case insensitive), barcode or sku
}

// ProductGroup names a product column that holds a category or location name.
type ProductGroup string

const (
	GroupCategory ProductGroup = "category"
	GroupLocation ProductGroup = "location"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by id.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves the catalog ordered by name.
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// CountLowStock counts products with stock at or below threshold.
	CountLowStock(ctx context.Context, threshold int) (int, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct overwrites an existing product's editable fields.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. It fails with ErrConflict while sales reference it.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductTransactionSupport defines operations used while recording a sale
type ProductTransactionSupport interface {
	// FindProductsByIDsForUpdate selects products and locks them for update within a transaction.
	FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error)

	// DecrementStockInTx subtracts sold quantities from stock within a given transaction.
	DecrementStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, userID string, now time.Time) error

	// ReassignGroupInTx renames a category or location on every product carrying it.
	ReassignGroupInTx(ctx context.Context, tx pgx.Tx, group ProductGroup, from, to, userID string, now time.Time) (int64, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductTransactionSupport
}
