package services

import (
	"context"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// CatalogReaderSvc defines read operations for the product catalog
type CatalogReaderSvc interface {
	// GetProduct retrieves a specific product by its id.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products matching the optional category and search term.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)

	// LowStockThreshold is the stock level at or below which a product counts as low.
	LowStockThreshold() int
}

// CatalogWriterSvc defines write operations for the product catalog
type CatalogWriterSvc interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct applies the fields present in req to an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)

	// DeleteProduct removes a product that no recorded sale references.
	DeleteProduct(ctx context.Context, productID string) error
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
