package pgsql

import (
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		ChequeRepo:    newPgxChequeRepository(dbPool),
		AssetRepo:     newPgxAssetRepository(dbPool),
		ActivityRepo:  newPgxActivityRepository(dbPool),
	}
}
