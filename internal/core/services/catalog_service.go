package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/google/uuid"
)

// DefaultLowStockThreshold is the stock level at or below which a product is reported as low.
const DefaultLowStockThreshold = 5

type catalogService struct {
	BaseService
	productRepo       portsrepo.ProductRepositoryFacade
	lowStockThreshold int
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo portsrepo.ProductRepositoryFacade, lowStockThreshold int) portssvc.CatalogSvcFacade {
	return &catalogService{productRepo: productRepo, lowStockThreshold: lowStockThreshold}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) LowStockThreshold() int {
	return s.lowStockThreshold
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get product", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, portsrepo.ProductFilter{
		Category: strings.TrimSpace(params.Category),
		Location: strings.TrimSpace(params.Location),
		Search:   strings.TrimSpace(params.Search),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Location:    strings.TrimSpace(req.Location),
		Barcode:     strings.TrimSpace(req.Barcode),
		SKU:         strings.TrimSpace(req.SKU),
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		AuditFields: domain.NewAuditFields(now, creatorUserID),
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save product", slog.String("name", product.Name))
		}
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	trimmed := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	trimmed(&product.Name, req.Name)
	trimmed(&product.Category, req.Category)
	trimmed(&product.Location, req.Location)
	trimmed(&product.Barcode, req.Barcode)
	trimmed(&product.SKU, req.SKU)
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if err := validateProduct(*product); err != nil {
		return nil, err
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.LogInfo(ctx, "Product updated", slog.String("product_id", productID))
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

func validateProduct(p domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if !p.SalePrice.IsPositive() {
		return fmt.Errorf("%w: sale price must be positive", apperrors.ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", apperrors.ErrValidation)
	}
	return nil
}
