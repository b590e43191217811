package pgsql

import (
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates the container of all PostgreSQL-backed
// repositories sharing one connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return &portsrepo.RepositoryProvider{
		OwnerRepo:       newPgxOwnerRepository(pool),
		AccountRepo:     accountRepo,
		TransactionRepo: newPgxTransactionRepository(pool),
		LedgerRepo:      newPgxLedgerRepository(pool, accountRepo),
	}
}
