package repositories

import (
	"context"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CategoryRepositoryFacade stores product categories. Renames and deletes run inside
// a transaction so products can be moved along with them.
type CategoryRepositoryFacade interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories ordered by name.
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)

	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategoryInTx(ctx context.Context, tx pgx.Tx, category domain.Category) error
	DeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID string) error
}

// LocationRepositoryFacade stores the places stock is kept.
type LocationRepositoryFacade interface {
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves locations ordered by name.
	ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error)

	SaveLocation(ctx context.Context, location domain.Location) error
	UpdateLocationInTx(ctx context.Context, tx pgx.Tx, location domain.Location) error
	DeleteLocationInTx(ctx context.Context, tx pgx.Tx, locationID string) error
}
