package dto

import (
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to add a product to the catalog.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category"`
	Location  string          `json:"location"`
	Barcode   string          `json:"barcode"`
	SKU       string          `json:"sku"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Stock     int             `json:"stock" binding:"min=0"`
}

// UpdateProductRequest changes the fields that are present and leaves the rest alone.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Location  *string          `json:"location"`
	Barcode   *string          `json:"barcode"`
	SKU       *string          `json:"sku"`
	SalePrice *decimal.Decimal `json:"salePrice"`
	Stock     *int             `json:"stock"`
}

// ListProductsParams are the query parameters accepted by the product listing.
type ListProductsParams struct {
	Category string `form:"category"`
	Location string `form:"location"`
	Search   string `form:"q"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Location      string          `json:"location"`
	Barcode       string          `json:"barcode"`
	SKU           string          `json:"sku"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         int             `json:"stock"`
	LowStock      bool            `json:"lowStock"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListProductsResponse wraps the product listing.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product, lowStockThreshold int) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Category:      p.Category,
		Location:      p.Location,
		Barcode:       p.Barcode,
		SKU:           p.SKU,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		LowStock:      p.Stock <= lowStockThreshold,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductsResponse converts a slice of domain.Product to ListProductsResponse
func ToListProductsResponse(products []domain.Product, lowStockThreshold int) ListProductsResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i], lowStockThreshold)
	}
	return ListProductsResponse{Products: res}
}

// CategoryRequest creates or renames a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// LocationRequest creates or edits a location.
type LocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SetActiveRequest shows or hides a category or location.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ListGroupsParams are the query parameters of the category and location listings.
type ListGroupsParams struct {
	ActiveOnly bool `form:"active"`
}

// ListCategoriesResponse wraps the category listing.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// ListLocationsResponse wraps the location listing.
type ListLocationsResponse struct {
	Locations []domain.Location `json:"locations"`
}
