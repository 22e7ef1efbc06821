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
	"github.com/shopspring/decimal"
)

const saleColumns = `sale_id, sale_type, customer_id, customer_name, customer_phone, subtotal, discount_percent, service_charge, tax, total, paid_amount, created_at, created_by, last_updated_at, last_updated_by`

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale records.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.SaleType,
		&m.CustomerID,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.Subtotal,
		&m.DiscountPercent,
		&m.ServiceCharge,
		&m.Tax,
		&m.Total,
		&m.PaidAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSaleInTx inserts the sale header, its items and its payments.
func (r *PgxSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m, items, payments := mapping.ToModelSale(sale)

	saleQuery := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, saleQuery,
		m.SaleID,
		m.SaleType,
		m.CustomerID,
		m.CustomerName,
		m.CustomerPhone,
		m.Subtotal,
		m.DiscountPercent,
		m.ServiceCharge,
		m.Tax,
		m.Total,
		m.PaidAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteError(err, "sale "+m.SaleID)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_id, line_no, product_id, name, quantity, price, item_discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, it := range items {
		batch.Queue(itemQuery, it.SaleID, it.LineNo, it.ProductID, it.Name, it.Quantity, it.Price, it.ItemDiscount)
	}
	paymentQuery := `
		INSERT INTO sale_payments (sale_id, line_no, method, amount, detail)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, p := range payments {
		batch.Queue(paymentQuery, p.SaleID, p.LineNo, p.Method, p.Amount, p.Detail)
	}
	if batch.Len() == 0 {
		return nil
	}

	// Close reports the first failing statement of the batch.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert lines for sale %s: %w", m.SaleID, err)
	}
	return nil
}

// FindSaleByID retrieves a sale with its items and payments.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	m, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	sales, err := r.attachLines(ctx, []models.Sale{m})
	if err != nil {
		return nil, err
	}
	return &sales[0], nil
}

// ListSales retrieves sales newest first, keyed on (created_at, sale_id) for stable paging.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	modelSales, err := r.queryHeaders(ctx, r.Pool, filter, false)
	if err != nil {
		return nil, err
	}
	return r.attachLines(ctx, modelSales)
}

// LockSalesInTx locks the matching sale rows. Must be called within a transaction.
func (r *PgxSaleRepository) LockSalesInTx(ctx context.Context, tx pgx.Tx, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	modelSales, err := r.queryHeaders(ctx, tx, filter, true)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sale, len(modelSales))
	for i, m := range modelSales {
		out[i] = mapping.ToDomainSale(m, nil, nil)
	}
	return out, nil
}

func (r *PgxSaleRepository) queryHeaders(ctx context.Context, q querier, filter portsrepo.SaleFilter, lock bool) ([]models.Sale, error) {
	var where whereBuilder
	if filter.SaleType != "" {
		where.add("sale_type = ?", string(filter.SaleType))
	}
	if filter.CustomerID != "" {
		where.add("customer_id = ?", filter.CustomerID)
	}
	if filter.Contact != nil {
		where.add("customer_name = ? AND COALESCE(customer_phone, '') = ?", filter.Contact.Name, filter.Contact.Phone)
	}
	if filter.From != nil {
		where.add("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		where.add("created_at < ?", *filter.To)
	}
	if filter.After != nil {
		where.add("(created_at, sale_id) < (?, ?)", filter.After.CreatedAt, filter.After.SaleID)
	}

	query := `SELECT ` + saleColumns + ` FROM sales ` + where.String() + ` ORDER BY created_at DESC, sale_id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ` + where.next(filter.Limit)
	}
	if lock {
		query += ` FOR UPDATE`
	}

	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}
	return modelSales, nil
}

// attachLines loads items and payments for the given headers in two queries.
func (r *PgxSaleRepository) attachLines(ctx context.Context, headers []models.Sale) ([]domain.Sale, error) {
	if len(headers) == 0 {
		return []domain.Sale{}, nil
	}
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.SaleID
	}

	itemRows, err := r.Pool.Query(ctx, `
		SELECT sale_id, line_no, product_id, name, quantity, price, item_discount
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, line_no;
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	items, err := pgx.CollectRows(itemRows, func(row pgx.CollectableRow) (models.SaleItem, error) {
		var it models.SaleItem
		err := row.Scan(&it.SaleID, &it.LineNo, &it.ProductID, &it.Name, &it.Quantity, &it.Price, &it.ItemDiscount)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale items: %w", err)
	}

	paymentRows, err := r.Pool.Query(ctx, `
		SELECT sale_id, line_no, method, amount, detail
		FROM sale_payments
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, line_no;
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale payments: %w", err)
	}
	payments, err := pgx.CollectRows(paymentRows, func(row pgx.CollectableRow) (models.SalePayment, error) {
		var p models.SalePayment
		err := row.Scan(&p.SaleID, &p.LineNo, &p.Method, &p.Amount, &p.Detail)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale payments: %w", err)
	}

	itemsBySale := make(map[string][]models.SaleItem)
	for _, it := range items {
		itemsBySale[it.SaleID] = append(itemsBySale[it.SaleID], it)
	}
	paymentsBySale := make(map[string][]models.SalePayment)
	for _, p := range payments {
		paymentsBySale[p.SaleID] = append(paymentsBySale[p.SaleID], p)
	}

	out := make([]domain.Sale, len(headers))
	for i, h := range headers {
		out[i] = mapping.ToDomainSale(h, itemsBySale[h.SaleID], paymentsBySale[h.SaleID])
	}
	return out, nil
}

// SummarizeSales counts and totals sales created in [from, to).
func (r *PgxSaleRepository) SummarizeSales(ctx context.Context, from, to time.Time) (portsrepo.SalesSummary, error) {
	var summary portsrepo.SalesSummary
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2;
	`, from, to).Scan(&summary.Count, &summary.Total)
	if err != nil {
		return portsrepo.SalesSummary{}, fmt.Errorf("failed to summarize sales: %w", err)
	}
	return summary, nil
}

// UpdatePaidAmountsInTx sets paid_amount on each sale. Every sale must exist.
func (r *PgxSaleRepository) UpdatePaidAmountsInTx(ctx context.Context, tx pgx.Tx, paid map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(paid) == 0 {
		return nil
	}
	query := `
		UPDATE sales
		SET paid_amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sale_id = $1;
	`

	batch := &pgx.Batch{}
	saleIDs := make([]string, 0, len(paid))
	for saleID, amount := range paid {
		batch.Queue(query, saleID, amount, now, userID)
		saleIDs = append(saleIDs, saleID)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, saleID := range saleIDs {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update paid amount for sale %s: %w", saleID, err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close paid amount batch: %w", err)
	}
	return batchErr
}
