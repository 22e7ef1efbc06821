package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_pos_app/internal/models"
	"github.com/SscSPs/shop_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoryColumns = `category_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by`
	locationColumns = `location_id, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxCategoryRepository struct {
	BaseRepository
}

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)
	_ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)
)

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(&m.CategoryID, &m.Name, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func scanLocation(row pgx.Row) (models.Location, error) {
	var m models.Location
	err := row.Scan(&m.LocationID, &m.Name, &m.Address, &m.Phone, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// activeClause filters a listing down to active rows when asked.
func activeClause(activeOnly bool) string {
	if activeOnly {
		return ` WHERE is_active`
	}
	return ``
}

// --- Categories ---

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.CategoryID, m.Name, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapWriteError(err, "category "+m.Name)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	m, err := scanCategory(r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE category_id = $1;`, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories`+activeClause(activeOnly)+` ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	categories := make([]domain.Category, len(modelCategories))
	for i, m := range modelCategories {
		categories[i] = mapping.ToDomainCategory(m)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategoryInTx(ctx context.Context, tx pgx.Tx, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	ct, err := tx.Exec(ctx, `
		UPDATE categories SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`, m.CategoryID, m.Name, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapWriteError(err, "category "+m.Name)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, m.CategoryID)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID string) error {
	ct, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}
	return nil
}

// --- Locations ---

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO locations (`+locationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, m.LocationID, m.Name, m.Address, m.Phone, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapWriteError(err, "location "+m.Name)
	}
	return nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	m, err := scanLocation(r.Pool.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE location_id = $1;`, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: location %s", apperrors.ErrNotFound, locationID)
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}
	l := mapping.ToDomainLocation(m)
	return &l, nil
}

func (r *PgxLocationRepository) ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+locationColumns+` FROM locations`+activeClause(activeOnly)+` ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	modelLocations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan locations: %w", err)
	}
	locations := make([]domain.Location, len(modelLocations))
	for i, m := range modelLocations {
		locations[i] = mapping.ToDomainLocation(m)
	}
	return locations, nil
}

func (r *PgxLocationRepository) UpdateLocationInTx(ctx context.Context, tx pgx.Tx, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	ct, err := tx.Exec(ctx, `
		UPDATE locations SET name = $2, address = $3, phone = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE location_id = $1;
	`, m.LocationID, m.Name, m.Address, m.Phone, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapWriteError(err, "location "+m.Name)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: location %s", apperrors.ErrNotFound, m.LocationID)
	}
	return nil
}

func (r *PgxLocationRepository) DeleteLocationInTx(ctx context.Context, tx pgx.Tx, locationID string) error {
	ct, err := tx.Exec(ctx, `DELETE FROM locations WHERE location_id = $1;`, locationID)
	if err != nil {
		return fmt.Errorf("failed to delete location %s: %w", locationID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: location %s", apperrors.ErrNotFound, locationID)
	}
	return nil
}
