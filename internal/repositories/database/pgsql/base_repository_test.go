package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var where whereBuilder
	assert.Equal(t, "", where.String())

	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	where.add("sale_type = ?", "cash")
	where.add("(created_at, sale_id) < (?, ?)", at, "s9")
	limit := where.next(51)

	assert.Equal(t, "WHERE sale_type = $1 AND (created_at, sale_id) < ($2, $3)", where.String())
	assert.Equal(t, "$4", limit)
	assert.Equal(t, []any{"cash", at, "s9", 51}, where.args)
}

func TestWrapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "idx_products_name"}
	err := wrapWriteError(dup, "product Tea")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "idx_products_name")

	other := errors.New("connection reset")
	err = wrapWriteError(other, "product Tea")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)

	referenced := &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "sale_items_product_id_fkey"}
	err = wrapWriteError(referenced, "product p1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "sale_items_product_id_fkey")
}

func TestGroupColumn(t *testing.T) {
	col, err := groupColumn(portsrepo.GroupCategory)
	assert.NoError(t, err)
	assert.Equal(t, "category", col)

	col, err = groupColumn(portsrepo.GroupLocation)
	assert.NoError(t, err)
	assert.Equal(t, "location", col)

	_, err = groupColumn("barcode; DROP TABLE products")
	assert.Error(t, err)
}

func TestRollbackNilTx(t *testing.T) {
	var r BaseRepository
	assert.NoError(t, r.Rollback(context.Background(), nil))
}
