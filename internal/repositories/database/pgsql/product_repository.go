package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_pos_app/internal/models"
	"github.com/SscSPs/shop_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `product_id, name, category, location, barcode, sku, sale_price, stock, created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Category,
		&m.Location,
		&m.Barcode,
		&m.SKU,
		&m.SalePrice,
		&m.Stock,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Category,
		m.Location,
		m.Barcode,
		m.SKU,
		m.SalePrice,
		m.Stock,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteError(err, "product "+m.Name)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// FindProductsByIDs retrieves the products that exist among productIDs.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	return r.findByIDs(ctx, r.Pool, productIDs, false)
}

// FindProductsByIDsForUpdate locks the selected rows. Must be called within a transaction.
func (r *PgxProductRepository) FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	return r.findByIDs(ctx, tx, productIDs, true)
}

func (r *PgxProductRepository) findByIDs(ctx context.Context, q querier, productIDs []string, lock bool) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1)`
	if lock {
		query += ` ORDER BY product_id FOR UPDATE`
	}

	rows, err := q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	out := make(map[string]domain.Product, len(modelProducts))
	for _, m := range modelProducts {
		out[m.ProductID] = mapping.ToDomainProduct(m)
	}
	return out, nil
}

// ListProducts retrieves the catalog ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	var where whereBuilder
	if filter.Category != "" {
		where.add("category = ?", filter.Category)
	}
	if filter.Location != "" {
		where.add("location = ?", filter.Location)
	}
	if filter.Search != "" {
		where.add("(name ILIKE '%' || ? || '%' OR barcode = ? OR sku = ?)", filter.Search, filter.Search, filter.Search)
	}
	query := `SELECT ` + productColumns + ` FROM products ` + where.String() + ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return mapping.ToDomainProductSlice(modelProducts), nil
}

// CountLowStock counts products with stock at or below threshold.
func (r *PgxProductRepository) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock <= $1;`, threshold).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count low stock products: %w", err)
	}
	return count, nil
}

// DecrementStockInTx subtracts sold quantities. A product without enough stock fails the whole batch.
func (r *PgxProductRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, userID string, now time.Time) error {
	if len(quantities) == 0 {
		return nil
	}
	query := `
		UPDATE products
		SET stock = stock - $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1 AND stock >= $2;
	`

	batch := &pgx.Batch{}
	productIDs := make([]string, 0, len(quantities))
	for productID, qty := range quantities {
		if qty <= 0 {
			continue
		}
		batch.Queue(query, productID, qty, now, userID)
		productIDs = append(productIDs, productID)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, productID := range productIDs {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update stock for product %s: %w", productID, err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: not enough stock for product %s", apperrors.ErrValidation, productID)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close stock update batch: %w", err)
	}
	return batchErr
}

// UpdateProduct overwrites the editable fields of an existing product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	ct, err := r.Pool.Exec(ctx, `
		UPDATE products
		SET name = $2, category = $3, location = $4, barcode = $5, sku = $6, sale_price = $7, stock = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE product_id = $1;
	`, m.ProductID, m.Name, m.Category, m.Location, m.Barcode, m.SKU, m.SalePrice, m.Stock, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapWriteError(err, "product "+m.Name)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, m.ProductID)
	}
	return nil
}

// DeleteProduct removes a product. Products referenced by a recorded sale cannot be deleted.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return wrapWriteError(err, "product "+productID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

// ReassignGroupInTx moves every product in group value from to value to.
// An empty to clears the assignment.
func (r *PgxProductRepository) ReassignGroupInTx(ctx context.Context, tx pgx.Tx, group portsrepo.ProductGroup, from, to, userID string, now time.Time) (int64, error) {
	column, err := groupColumn(group)
	if err != nil {
		return 0, err
	}
	ct, err := tx.Exec(ctx, `
		UPDATE products
		SET `+column+` = $2, last_updated_at = $3, last_updated_by = $4
		WHERE `+column+` = $1;
	`, from, to, now, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign products from %s %q: %w", group, from, err)
	}
	return ct.RowsAffected(), nil
}

func groupColumn(group portsrepo.ProductGroup) (string, error) {
	switch group {
	case portsrepo.GroupCategory:
		return "category", nil
	case portsrepo.GroupLocation:
		return "location", nil
	}
	return "", fmt.Errorf("unknown product group %q", group)
}
