package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pocketfin/pocket_finance_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		WatchlistRepo:   newPgxWatchlistRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
