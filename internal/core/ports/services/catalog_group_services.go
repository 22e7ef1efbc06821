package services

import (
	"context"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// CategorySvc manages product categories. Products carry the category name, so a
// rename or delete is applied to them as well.
type CategorySvc interface {
	ListCategories(ctx context.Context, params dto.ListGroupsParams) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CategoryRequest, userID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, userID string) (*domain.Category, error)
	SetCategoryActive(ctx context.Context, categoryID string, active bool, userID string) (*domain.Category, error)

	// DeleteCategory removes the category and leaves its products uncategorised.
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// LocationSvc manages stock locations the same way CategorySvc manages categories.
type LocationSvc interface {
	ListLocations(ctx context.Context, params dto.ListGroupsParams) ([]domain.Location, error)
	CreateLocation(ctx context.Context, req dto.LocationRequest, userID string) (*domain.Location, error)
	UpdateLocation(ctx context.Context, locationID string, req dto.LocationRequest, userID string) (*domain.Location, error)
	SetLocationActive(ctx context.Context, locationID string, active bool, userID string) (*domain.Location, error)
	DeleteLocation(ctx context.Context, locationID, userID string) error
}
