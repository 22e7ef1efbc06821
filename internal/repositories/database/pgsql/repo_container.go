package pgsql

import (
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx-backed repository over dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:  newPgxProductRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		LocationRepo: newPgxLocationRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		TxManager:    &BaseRepository{Pool: dbPool},
	}
}
